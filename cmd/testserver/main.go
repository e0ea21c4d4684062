//nolint:errcheck,forbidigo,gosec // test utility allows simpler error handling and direct output
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"strings"
)

func main() {
	port := flag.Int("port", 8080, "Port to listen on")
	flag.Parse()

	http.HandleFunc("/broken/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, "<html><head></head><body>This page has no title.</body></html>")
		log.Printf("Served untitled page for %s", r.URL.Path)
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.Trim(r.URL.Path, "/")
		if name == "" {
			name = "index"
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w,
			"<html><head><title>Survey %s</title></head><body><h1>Survey %s</h1><p>Stand-in survey page.</p></body></html>",
			name, name)
		log.Printf("Served survey page for %s", r.URL.Path)
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Survey stub listening on %s", addr)
	log.Printf("Any path serves a titled page: http://localhost%s/daily/1", addr)
	log.Printf("Paths under /broken/ serve one without a title: http://localhost%s/broken/daily/1", addr)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
