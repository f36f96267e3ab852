package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	v1websocket "github.com/quillforge/quill/internal/api/v1/handlers/websocket"
	v1mware "github.com/quillforge/quill/internal/api/v1/middleware"
	"github.com/quillforge/quill/internal/services"
)

// RegisterV1Routes wires the editor surface onto the router
func RegisterV1Routes(router *mux.Router, services *services.Services) {
	// v1 routes
	v1 := router.PathPrefix("/v1").Subrouter()

	redisService := services.GetRedisService()

	// Completion routes (the network-bound flows)
	v1completions := v1.PathPrefix("/completions").Subrouter()
	v1completions.Handle("", v1mware.RateLimit("completion", redisService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleGenerate(services.GetAssistantService(), w, r)
	}))).Methods("POST")
	v1completions.Handle("/comment", v1mware.RateLimit("completion", redisService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleGenerateFromComment(services.GetAssistantService(), w, r)
	}))).Methods("POST")
	v1completions.Handle("/inline", v1mware.RateLimit("inline", redisService)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HandleInlineCompletions(services.GetAssistantService(), w, r)
	}))).Methods("POST")

	// Assistant mode and status routes
	v1assistant := v1.PathPrefix("/assistant").Subrouter()
	v1assistant.HandleFunc("/enable", func(w http.ResponseWriter, r *http.Request) {
		HandleEnable(services.GetAssistantService(), w, r)
	}).Methods("POST")
	v1assistant.HandleFunc("/disable", func(w http.ResponseWriter, r *http.Request) {
		HandleDisable(services.GetAssistantService(), w, r)
	}).Methods("POST")
	v1assistant.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		HandleStatus(services.GetAssistantService(), w, r)
	}).Methods("GET")

	// Status presentation channel
	v1.HandleFunc("/status/ws", func(w http.ResponseWriter, r *http.Request) {
		v1websocket.HandleStatusWebSocket(services.GetStatusService(), services.GetConnectionManager(), w, r)
	})
}
