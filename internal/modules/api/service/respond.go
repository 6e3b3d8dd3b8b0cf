package service

import (
	"net/http"

	"trade_gateway/internal/clienterr"
	"trade_gateway/pkg/logger"

	"github.com/bytedance/sonic"
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := sonic.Marshal(v)
	if err != nil {
		logger.Error("encode response: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// writeClassified renders an upstream/pipeline failure through the stable
// error taxonomy.
func writeClassified(w http.ResponseWriter, err error) {
	c := clienterr.Classify(err)
	writeJSON(w, c.HTTPStatus, errorBody{Error: string(c.Category), Message: c.Message})
}

func writeError(w http.ResponseWriter, status int, category, message string) {
	writeJSON(w, status, errorBody{Error: category, Message: message})
}
