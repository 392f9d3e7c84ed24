// Command crackd is a small terminal client for the rating API. With an
// access token (CRACKD_TOKEN) votes go to the server; without one they are
// shadowed in a local file that is never synced back.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/crackd/api/internal/core/domain"
	"github.com/crackd/api/internal/localvotes"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}

	baseURL := os.Getenv("CRACKD_API")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	token := os.Getenv("CRACKD_TOKEN")

	switch os.Args[1] {
	case "leaderboard":
		leaderboard(baseURL)
	case "vote":
		if len(os.Args) < 4 {
			usage()
		}
		vote(baseURL, token, os.Args[2], os.Args[3])
	case "mine":
		mine(baseURL, token)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: crackd leaderboard | vote <startup> <CRACKED|COOKED> | mine")
	os.Exit(2)
}

func leaderboard(baseURL string) {
	resp, err := http.Get(baseURL + "/api/startups/leaderboard")
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var entries []domain.Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		log.Fatal(err)
	}

	for _, e := range entries {
		total := e.Startup.TotalVotes()
		if total == 0 {
			fmt.Printf("%3d. %-30s (no votes)\n", e.Position, e.Startup.Name)
			continue
		}
		fmt.Printf("%3d. %-30s %5.1f%% cracked (%d votes) %s\n",
			e.Position, e.Startup.Name, e.Ratio*100, total, trendMarker(e.Trend))
	}
}

func vote(baseURL, token, startupName, rawChoice string) {
	choice, err := domain.ParseChoice(strings.ToUpper(rawChoice))
	if err != nil {
		log.Fatal(err)
	}

	if token == "" {
		// Signed-out degraded mode: shadow the vote locally. This mapping is
		// lossy and never reconciled with the server.
		path, err := localvotes.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
		cache, err := localvotes.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := cache.Set(startupName, choice); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("not signed in: vote for %q saved locally only (%s)\n", startupName, path)
		return
	}

	body, _ := json.Marshal(map[string]string{"choice": string(choice)})
	req, err := http.NewRequest("POST", baseURL+"/api/startups/"+startupName+"/votes", bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		log.Fatalf("vote failed: %s", resp.Status)
	}
	fmt.Printf("voted %s on %q\n", choice, startupName)
}

func mine(baseURL, token string) {
	if token == "" {
		path, err := localvotes.DefaultPath()
		if err != nil {
			log.Fatal(err)
		}
		cache, err := localvotes.Open(path)
		if err != nil {
			log.Fatal(err)
		}
		for name, choice := range cache.All() {
			fmt.Printf("%-30s %s (local only)\n", name, choice)
		}
		return
	}

	req, err := http.NewRequest("GET", baseURL+"/api/votes/mine", nil)
	if err != nil {
		log.Fatal(err)
	}
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("listing votes failed: %s", resp.Status)
	}

	var votes []*domain.Vote
	if err := json.NewDecoder(resp.Body).Decode(&votes); err != nil {
		log.Fatal(err)
	}
	for _, v := range votes {
		fmt.Printf("%-30s %s\n", v.StartupName, v.Choice)
	}
}

func trendMarker(t domain.Trend) string {
	switch t {
	case domain.TrendCracked:
		return "↑"
	case domain.TrendCooked:
		return "↓"
	}
	return ""
}
