//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"net/http"

	"github.com/simukka/psychedelic-chaos/chaos"
)

// newMux serves the page at the root and everything else from staticDir.
func newMux(page []byte, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(page)
			return
		}
		files.ServeHTTP(w, r)
	})

	// Effect catalogue, handy when wiring new controls into the page
	mux.HandleFunc("/api/effects", func(w http.ResponseWriter, r *http.Request) {
		type effect struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		}
		var list []effect
		for id := chaos.Particles; id <= chaos.Spiral; id++ {
			list = append(list, effect{ID: int(id), Name: id.String()})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"effects": list,
		})
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}
