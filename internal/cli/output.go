package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case TokenResult:
		o.printTokenResult(v)
	case UserInfo:
		o.printUserInfo(v)
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case PlayerStats:
		o.printPlayerStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TokenResult response type (matches API)
type TokenResult struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token,omitempty"`
	IssuedAt     string `json:"issued_at"`
}

// UserInfo response type
type UserInfo struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Player response type
type Player struct {
	PlayerID         string `json:"player_id"`
	Username         string `json:"username"`
	Email            string `json:"email"`
	DisplayName      string `json:"display_name"`
	Status           string `json:"status"`
	Level            int    `json:"level"`
	ExperiencePoints int    `json:"experience_points"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// PlayerStats response type
type PlayerStats struct {
	PlayerID           string  `json:"player_id"`
	TotalGames         int     `json:"total_games"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	WinRate            float64 `json:"win_rate"`
	TotalPlaytimeHours int     `json:"total_playtime_hours"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printTokenResult(t TokenResult) {
	fmt.Printf("Access Token: %s\n", t.AccessToken)
	fmt.Printf("Token Type: %s\n", t.TokenType)
	fmt.Printf("Expires In: %ds\n", t.ExpiresIn)
	if t.RefreshToken != "" {
		fmt.Printf("Refresh Token: %s\n", t.RefreshToken)
	}
}

func (o *Output) printUserInfo(u UserInfo) {
	activeStr := "no"
	if u.IsActive {
		activeStr = "yes"
	}
	fmt.Printf("User: %s (%s)\n", u.Username, u.UserID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Active: %s\n", activeStr)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Username, p.PlayerID)
	fmt.Printf("Display Name: %s\n", p.DisplayName)
	fmt.Printf("Email: %s\n", p.Email)
	fmt.Printf("Status: %s\n", p.Status)
	fmt.Printf("Level: %d (%d XP)\n", p.Level, p.ExperiencePoints)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", l.Count)
	for _, p := range l.Players {
		fmt.Printf("  - %s (%s) - %s, level %d\n", p.Username, p.PlayerID, p.Status, p.Level)
	}
}

func (o *Output) printPlayerStats(s PlayerStats) {
	fmt.Printf("Stats for %s:\n", s.PlayerID)
	fmt.Printf("  Games: %d (%d wins, %d losses)\n", s.TotalGames, s.Wins, s.Losses)
	fmt.Printf("  Win Rate: %.2f\n", s.WinRate)
	fmt.Printf("  Playtime: %dh\n", s.TotalPlaytimeHours)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
