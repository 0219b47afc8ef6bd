package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	log.SetFlags(log.Lshortfile)

	addr := flag.String("addr", "", "Address to bind the API server to, e.g. :9091.")
	dir := flag.String("dir", "./data", "Data directory to use.")
	check := flag.Bool("check", false, "Parse each file argument and report the result.")
	format := flag.Bool("fmt", false, "Write each file argument to stdout in canonical form.")
	flag.Parse()

	switch {
	case *check:
		os.Exit(checkFiles(os.Stdout, flag.Args()))
	case *format:
		err := formatFiles(os.Stdout, flag.Args())
		if err != nil {
			log.Fatal(err)
		}
	case *addr != "":
		api := newAPI(*dir)
		log.Println("listening on", *addr)
		err := http.ListenAndServe(*addr, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "*")
			log.Printf("%s %s - %s", req.Method, req.URL.Path, req.RemoteAddr)
			api.ServeHTTP(w, req)
		}))
		if err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintln(os.Stderr, "one of -check, -fmt or -addr is required")
		flag.Usage()
		os.Exit(2)
	}
}
