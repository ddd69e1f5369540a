package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gonum.org/v1/gonum/mat"

	"github.com/basedalex/nlptk/pkg/document"
	"github.com/basedalex/nlptk/pkg/words"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	storedPassword, err := h.service.GetUserPasswordByLogin(r.Context(), creds.Login)
	if err != nil {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(creds.Password)); err != nil {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": creds.Login,
		"exp":   h.clock.Now().Add(time.Hour * time.Duration(h.cfg.TokenMaxTime)).Unix(),
	})

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, map[string]string{"token": tokenString})
}

func (h *Handler) stem(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no word to stem"))
		return
	}

	stemmed, err := h.stemmer.Stem(word)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	writeOkResponse(w, http.StatusOK, stemmed)
}

func (h *Handler) normalize(w http.ResponseWriter, r *http.Request) {
	keywords, err := words.Normalize(r.URL.Query().Get("text"), h.stemmer)
	if err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	writeOkResponse(w, http.StatusOK, keywords)
}

type sentimentResponse struct {
	Valence     float64 `json:"valence"`
	Arousal     float64 `json:"arousal"`
	Description string  `json:"description"`
}

func (h *Handler) sentiment(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no text to score"))
		return
	}

	var tokens []string
	for _, sentence := range words.Sentences(text) {
		tokens = append(tokens, words.Tokens(sentence)...)
	}

	s := h.model.SentimentForTerms(tokens)
	writeOkResponse(w, http.StatusOK, sentimentResponse{
		Valence:     s.Valence,
		Arousal:     s.Arousal,
		Description: h.model.TermsDescription(tokens),
	})
}

type termRequest struct {
	Term    string  `json:"term"`
	Valence float64 `json:"valence"`
	Arousal float64 `json:"arousal"`
}

func (h *Handler) addTerm(w http.ResponseWriter, r *http.Request) {
	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	if req.Term == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no term to add"))
		return
	}

	if err := h.model.AddOrReplaceTerm(req.Term, req.Valence, req.Arousal); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	entry, _ := h.model.Entry(req.Term)
	if err := h.service.SaveTerm(r.Context(), entry); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, entry)
}

type similarityRequest struct {
	Documents []string `json:"documents"`
	Rank      int      `json:"rank"`
}

type similarityResponse struct {
	Terms  []string    `json:"terms"`
	Cosine [][]float64 `json:"cosine"`
	LSA    [][]float64 `json:"lsa,omitempty"`
}

func (h *Handler) similarity(w http.ResponseWriter, r *http.Request) {
	var req similarityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	terms, tf, err := document.BuildMatrix(r.Context(), req.Documents, h.stemmer, h.cfg.Workers)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, document.ErrNoTerms) {
			status = http.StatusBadRequest
		}
		writeErrResponse(w, status, err)
		return
	}

	tfidf := document.NewDocumentTermFrequencies(tf).TFIDF()
	resp := similarityResponse{
		Terms:  terms,
		Cosine: rows(tfidf.CosineSimilarity()),
	}

	if req.Rank > 0 {
		lsa, err := tfidf.LSACosineSimilarity(req.Rank)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, document.ErrInvalidRank) {
				status = http.StatusBadRequest
			}
			writeErrResponse(w, status, err)
			return
		}
		resp.LSA = rows(lsa)
	}

	writeOkResponse(w, http.StatusOK, resp)
}

func rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}
