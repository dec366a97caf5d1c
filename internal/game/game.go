package game

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyTitle = errors.New("game title is required")

// Game is a single title tracked in the library.
type Game struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"not null;index" json:"title"`
	Platform      string     `json:"platform"`
	Status        Status     `gorm:"size:16;not null;default:Wishlist" json:"status"`
	DateCompleted *time.Time `json:"dateCompleted"`
	Description   string     `gorm:"type:text" json:"description"`
}

func (Game) TableName() string { return "Games" }

// NewGame returns a wishlisted game with a fresh identifier.
func NewGame(title string, platform string) *Game {
	return &Game{
		ID:       uuid.New(),
		Title:    title,
		Platform: platform,
		Status:   Wishlist,
	}
}

// Prepare fills the defaults of a game about to be created and validates it.
func (g *Game) Prepare() error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = Wishlist
	}
	return g.Validate()
}

// Clone returns a copy of the game that shares no memory with it.
func (g Game) Clone() Game {
	if g.DateCompleted != nil {
		date := *g.DateCompleted
		g.DateCompleted = &date
	}
	return g
}

func (g *Game) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := ParseStatus(string(g.Status)); err != nil {
		return err
	}
	return nil
}

// SetStatus changes the status and keeps the completion date consistent with it:
// the date is set to now when the game gets completed and cleared otherwise.
func (g *Game) SetStatus(status Status, now time.Time) {
	g.Status = status
	if status == Completed {
		completed := now.UTC()
		g.DateCompleted = &completed
	} else {
		g.DateCompleted = nil
	}
}
