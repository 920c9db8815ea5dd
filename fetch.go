package main

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	path "path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// catalogList is the base name of the catalog data file. Fetchers look
// for '<name>.csv.gz' wherever they're pointed at.
const catalogList = "netflix_titles"

// fetcher provides an interface for retrieving catalog data files. This
// abstracts over where the data files come from: local directory, HTTP,
// FTP, etc.
type fetcher interface {
	list(name string) (io.ReadCloser, error)
}

// newFetcher returns a fetcher based on the uri given. The uri may be a
// full FTP or HTTP URL containing the catalog CSV file, or a local
// directory containing it.
func newFetcher(uri string) fetcher {
	if !strings.HasPrefix(uri, "http") && !strings.HasPrefix(uri, "ftp") {
		return dirFetcher(uri)
	}

	loc, err := url.Parse(uri)
	if err != nil {
		pef("Could not parse URL '%s': %s", uri, err)
		return nil
	}
	switch loc.Scheme {
	case "http", "https":
		return httpFetcher{loc}
	case "ftp":
		return ftpFetcher{loc}
	}
	pef("Unsupported URL scheme '%s' in '%s'.", loc.Scheme, uri)
	return nil
}

// dirFetcher satisfies the fetcher interface by reading from a local
// directory.
type dirFetcher string

func (df dirFetcher) list(name string) (io.ReadCloser, error) {
	fpath := path.Join(string(df), sf("%s.csv.gz", name))
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// httpFetcher satisfies the fetcher interface by reading from an HTTP
// URL.
type httpFetcher struct {
	*url.URL
}

func (hf httpFetcher) list(name string) (io.ReadCloser, error) {
	uri := sf("%s/%s.csv.gz", hf.String(), name)
	resp, err := http.Get(uri)
	if err != nil {
		return nil, ef("Could not download '%s': %s", uri, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, ef("Could not download '%s': %s", uri, resp.Status)
	}
	return resp.Body, nil
}

type ftpReadCloser struct {
	cmd            *exec.Cmd
	stdout, stderr io.ReadCloser
}

func (r *ftpReadCloser) Read(bs []byte) (int, error) {
	n, err := r.stdout.Read(bs)
	if err != nil && err != io.EOF {
		stderr, err2 := io.ReadAll(r.stderr)
		if err2 != nil {
			return 0, ef("Bad stuff happened while reading stderr: %s", err2)
		}
		return 0, ef("FTP download failed: %s\n\nstderr:\n\n%s", err, stderr)
	}
	return n, err
}

func (r *ftpReadCloser) Close() error {
	if r.cmd == nil {
		return nil
	}
	if err := r.cmd.Wait(); err != nil {
		return ef("Could not close FTP download: %s", err)
	}
	return nil
}

// ftpFetcher satisfies the fetcher interface by reading from an FTP URL.
// Each fetch runs in its own 'goflix ftp' process so that a connection
// that refuses to die takes the child down with it, not us.
type ftpFetcher struct {
	*url.URL
}

func (ff ftpFetcher) list(name string) (io.ReadCloser, error) {
	var goflix string
	var err error

	if strings.Contains(os.Args[0], string(path.Separator)) {
		goflix, err = path.Abs(os.Args[0])
		if err != nil {
			return nil, ef("Could not find 'goflix' executable: %s", err)
		}
	} else {
		goflix = "goflix"
	}

	c := exec.Command(goflix, "ftp", name, ff.URL.String())
	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := c.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := c.Start(); err != nil {
		return nil, err
	}
	return &ftpReadCloser{c, stdout, stderr}, nil
}

// gzipFetcher wraps a value satisfying the fetcher interface with a gzip
// reader. It also couples the closing of a gzip reader with closing the
// underlying reader.
type gzipFetcher struct {
	fetcher
}

func (gf gzipFetcher) list(name string) (io.ReadCloser, error) {
	plain, err := gf.fetcher.list(name)
	if err != nil {
		return nil, err
	}

	gzlist, err := gzip.NewReader(plain)
	if err != nil {
		plain.Close()
		return nil, ef("Could not create gzip reader for '%s': %s", name, err)
	}
	return &gzipCloser{gzlist, plain}, nil
}

type gzipCloser struct {
	gz    *gzip.Reader
	plain io.ReadCloser
}

func (gc *gzipCloser) Read(bs []byte) (int, error) {
	return gc.gz.Read(bs)
}

func (gc *gzipCloser) Close() error {
	if err := gc.gz.Close(); err != nil {
		gc.plain.Close()
		return err
	}
	return gc.plain.Close()
}

// saver wraps a fetcher so that everything read is also written to a
// file in the directory given. An empty directory disables saving.
type saver struct {
	fetcher
	dir string
}

func (s saver) list(name string) (io.ReadCloser, error) {
	r, err := s.fetcher.list(name)
	if err != nil || len(s.dir) == 0 {
		return r, err
	}
	f := createFile(path.Join(s.dir, sf("%s.csv.gz", name)))
	return teeCloser{io.TeeReader(r, f), r, f}, nil
}

type teeCloser struct {
	io.Reader
	r io.ReadCloser
	f *os.File
}

func (tc teeCloser) Close() error {
	if _, err := io.Copy(tc.f, tc.r); err != nil {
		return err
	}
	if err := tc.f.Close(); err != nil {
		return err
	}
	return tc.r.Close()
}
