package main

import (
	"os"
	"path"

	"github.com/BurntSushi/toml"
)

// visitedState remembers which views have been looked at, so the usage
// output can nudge people toward the views they haven't explored yet.
// It is strictly best effort: a missing or unwritable state file never
// fails a command.
type visitedState struct {
	Views map[string]bool
}

func visitedPath() (string, error) {
	dir := os.Getenv("XDG_DATA_HOME")
	if len(dir) == 0 {
		home := os.Getenv("HOME")
		if len(home) == 0 {
			return "", ef("Neither XDG_DATA_HOME nor HOME is set.")
		}
		dir = path.Join(home, ".local", "share")
	}
	dir = path.Join(dir, "goflix")
	if err := os.MkdirAll(dir, 0777); err != nil {
		return "", err
	}
	return path.Join(dir, "visited.toml"), nil
}

func readVisited() map[string]bool {
	fpath, err := visitedPath()
	if err != nil {
		return map[string]bool{}
	}
	var state visitedState
	if _, err := toml.DecodeFile(fpath, &state); err != nil {
		return map[string]bool{}
	}
	if state.Views == nil {
		return map[string]bool{}
	}
	return state.Views
}

func markVisited(view string) {
	seen := readVisited()
	if seen[view] {
		return
	}
	seen[view] = true

	fpath, err := visitedPath()
	if err != nil {
		return
	}
	f, err := os.Create(fpath)
	if err != nil {
		return
	}
	defer f.Close()
	toml.NewEncoder(f).Encode(visitedState{Views: seen})
}
