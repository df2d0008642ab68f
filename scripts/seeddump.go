package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go-resume-backend/internal/repository/store"
)

// Dumps the seed resume as persisted JSON, handy for inspecting what a
// fresh install writes before any edits.
func main() {
	resume := store.NewDefaultResume(store.ShortID(), "我的简历", store.Today())

	out, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
