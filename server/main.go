//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve the compiled bundle and assets from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Psychedelic Chaos server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, newMux(indexHTML, *staticDir)); err != nil {
		log.Fatal(err)
	}
}
