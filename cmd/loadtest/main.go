package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8080"
	rps        = 5
	duration   = 2 * time.Minute
)

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	TeamID    *int   `json:"team_id"`
}

type RegisterResponse struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

type TeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type TeamResponse struct {
	Team struct {
		ID int `json:"id"`
	} `json:"team"`
}

type ChangeTeamRequest struct {
	TeamID int `json:"team_id"`
}

var (
	teams []int
	users []string
	httpc = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any, out any) (int, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		_ = json.NewDecoder(resp.Body).Decode(out)
	}
	return resp.StatusCode, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating teams and users...")

	for t := 1; t <= 10; t++ {
		var teamResp TeamResponse
		status, err := postJSON(targetHost+"/teams", TeamRequest{
			Name:        fmt.Sprintf("loadteam-%d-%d", t, time.Now().UnixNano()),
			Description: "load testing team",
		}, &teamResp)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN POST /teams returned %d\n", status)
			continue
		}

		teams = append(teams, teamResp.Team.ID)
		time.Sleep(20 * time.Millisecond)
	}

	for u := 1; u <= 100; u++ {
		teamID := teams[rand.Intn(len(teams))]
		var regResp RegisterResponse
		status, err := postJSON(targetHost+"/auth/register", RegisterRequest{
			Email:     fmt.Sprintf("load-%d-%d@example.com", u, time.Now().UnixNano()),
			FirstName: fmt.Sprintf("User%d", u),
			LastName:  "Load",
			TeamID:    &teamID,
		}, &regResp)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN POST /auth/register returned %d\n", status)
			continue
		}

		users = append(users, regResp.User.ID)
		time.Sleep(15 * time.Millisecond)
	}

	log.Printf("Seed completed: teams=%d users=%d\n", len(teams), len(users))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 40% GET текущее назначение
		if r < 0.40 {
			user := users[rand.Intn(len(users))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/team", targetHost, user)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 30% GET история
		if r < 0.70 {
			user := users[rand.Intn(len(users))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/users/%s/team/history", targetHost, user)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 20% GET состав команды
		if r < 0.90 {
			team := teams[rand.Intn(len(teams))]
			t.Method = http.MethodGet
			t.URL = fmt.Sprintf("%s/teams/%d/roster", targetHost, team)
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% POST перевод в другую команду — горячий путь с транзакцией
		user := users[rand.Intn(len(users))]
		team := teams[rand.Intn(len(teams))]
		body, _ := json.Marshal(ChangeTeamRequest{TeamID: team})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/admin/users/%s/team", targetHost, user)
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
