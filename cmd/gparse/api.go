package main

import (
	"encoding/json"
	"errors"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	sse "github.com/alexandrevicenzi/go-sse"
	"github.com/gorilla/mux"
	"github.com/mastercactapus/gparse/gcode"
)

type api struct {
	http.Handler
	dataDir string
	sse     *sse.Server
}

func newAPI(dir string) *api {
	r := mux.NewRouter()

	a := &api{
		Handler: r,
		dataDir: dir,
		sse: sse.NewServer(&sse.Options{
			Logger: log.New(ioutil.Discard, "", 0),
		}),
	}

	fs := http.StripPrefix("/data", http.FileServer(http.Dir(dir)))
	r.Methods("GET").PathPrefix("/data/").Handler(fs)
	r.Methods("PUT").Path("/data/{name}").HandlerFunc(a.putFile)
	r.Methods("DELETE").Path("/data/{name}").HandlerFunc(a.deleteFile)

	r.Methods("POST").Path("/api/parse").HandlerFunc(a.parse)
	r.Methods("GET").Path("/api/programs/{name}").HandlerFunc(a.program)

	r.PathPrefix("/events/").Handler(a.sse)

	return a
}

func safePath(base, name string) (bool, string) {
	if filepath.Separator != '/' && strings.ContainsRune(name, filepath.Separator) {
		log.Println("invalid path '" + name + "'")
		return false, ""
	}
	dir := string(base)
	if dir == "" {
		dir = "."
	}
	fullName := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+name)))
	return true, fullName
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		log.Println("ERROR: encode:", err)
	}
}

// parseError writes err with the status it maps to.
func parseError(w http.ResponseWriter, err error) {
	var pe *gcode.ParseError
	if errors.As(err, &pe) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("ERROR: parse: %+v", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (a *api) parse(w http.ResponseWriter, req *http.Request) {
	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := gcode.Parse(string(data))
	if err != nil {
		parseError(w, err)
		return
	}

	writeJSON(w, newProgramView(p))
}

func (a *api) program(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	ok, fullName := safePath(a.dataDir, name)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	p, err := parseFile(fullName)
	if os.IsNotExist(err) {
		http.NotFound(w, req)
		return
	}
	if err != nil {
		parseError(w, err)
		return
	}

	v := newProgramView(p)
	v.Name = name
	writeJSON(w, v)
}

// putFile stores a program after checking that it parses, then announces
// it on /events/programs.
func (a *api) putFile(w http.ResponseWriter, req *http.Request) {
	name := mux.Vars(req)["name"]
	ok, fullName := safePath(a.dataDir, name)
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	data, err := ioutil.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := gcode.Parse(string(data))
	if err != nil {
		parseError(w, err)
		return
	}

	os.MkdirAll(filepath.Dir(fullName), 0755)
	err = ioutil.WriteFile(fullName, data, 0644)
	if err != nil {
		log.Printf("ERROR: write '%s': %+v", fullName, err)
		http.Error(w, err.Error(), 500)
		return
	}

	s := summarize(p)
	s.Name = name
	msg, err := json.Marshal(s)
	if err != nil {
		log.Printf("ERROR: marshal json: %+v", err)
		return
	}
	a.sse.SendMessage("/events/programs", sse.SimpleMessage(string(msg)))
}

func (a *api) deleteFile(w http.ResponseWriter, req *http.Request) {
	ok, name := safePath(a.dataDir, mux.Vars(req)["name"])
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	err := os.Remove(name)
	if os.IsNotExist(err) {
		http.NotFound(w, req)
		return
	}
	if err != nil {
		log.Printf("ERROR: delete '%s': %+v", name, err)
		http.Error(w, err.Error(), 500)
		return
	}
}
