// Copyright (c) 2025 The Curly Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/curlyfmt/curly"
	"github.com/curlyfmt/curly/internal/scenario"

	"github.com/fsnotify/fsnotify"
	"github.com/yuin/goldmark"
	"golang.org/x/sync/errgroup"
)

// serveCmd implements the command "curly serve".
func serveCmd() {
	addr := flag.String("addr", "localhost:8080", "listen address")
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		exit(1)
		return
	}
	err := serve(*addr)
	if err != nil {
		exitError("%s", err)
	}
}

// serve serves the current directory at addr. Scenario files render as plain
// text reports and are re-rendered when they change on disk, markdown files
// render as HTML and all other files are served statically.
func serve(addr string) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	srv := &server{
		watcher: watcher,
		static:  http.FileServer(http.Dir(".")),
		reports: map[string][]byte{},
		watched: map[string]bool{},
	}

	httpServer := &http.Server{
		Addr:           addr,
		Handler:        srv,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	stderr(
		curly.MustFormat("Scenario reports are available at http://{}/", addr),
		"Press Ctrl+C to stop",
		"",
	)

	// The first goroutine to fail cancels ctx and unblocks the other two:
	// the watcher loop exits on ctx and the server is closed.
	g, ctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					name := strings.ReplaceAll(event.Name, "\\", "/")
					srv.invalidate(name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return err
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		err := httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		return httpServer.Close()
	})
	return g.Wait()
}

// server is the HTTP handler of the serve command. It caches rendered
// scenario reports and drops them from the cache when the watcher sees the
// underlying file change.
type server struct {
	watcher *fsnotify.Watcher
	static  http.Handler

	sync.Mutex
	reports map[string][]byte
	watched map[string]bool
}

func (srv *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch path.Ext(r.URL.Path) {
	case ".yaml", ".yml", ".txtar":
		srv.serveReport(w, r)
	case ".md":
		srv.serveMarkdown(w, r)
	default:
		srv.static.ServeHTTP(w, r)
	}
}

// serveReport serves the report of the scenario file named by the request
// path, rendering and caching it on the first request.
func (srv *server) serveReport(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	srv.Lock()
	report, ok := srv.reports[name]
	srv.Unlock()
	if !ok {
		files, err := loadPath(name)
		if err != nil {
			if os.IsNotExist(err) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		report = renderReport(files)
		err = srv.watch(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		srv.Lock()
		srv.reports[name] = report
		srv.Unlock()
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write(report)
}

// serveMarkdown serves the markdown file named by the request path as HTML.
func (srv *server) serveMarkdown(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/")
	src, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	err = goldmark.Convert(src, &buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// watch starts watching the file name, if it is not already watched.
func (srv *server) watch(name string) error {
	srv.Lock()
	defer srv.Unlock()
	if srv.watched[name] {
		return nil
	}
	err := srv.watcher.Add(name)
	if err != nil {
		return err
	}
	srv.watched[name] = true
	return nil
}

// invalidate drops the cached report of the file name.
func (srv *server) invalidate(name string) {
	srv.Lock()
	delete(srv.reports, name)
	srv.Unlock()
}

// renderReport renders the verification report of the given scenario files.
func renderReport(files []*scenario.File) []byte {
	b := &bytes.Buffer{}
	for _, file := range files {
		_, _ = curly.Fprint(b, "== {} ({} scenarios)\n", file.Name, len(file.Scenarios))
		for _, sc := range file.Scenarios {
			msg, ok := verify(sc)
			if ok {
				_, _ = curly.Fprint(b, "ok   {}\n", sc.Name)
			} else {
				_, _ = curly.Fprint(b, "FAIL {:<30} {}\n", sc.Name, msg)
			}
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}
