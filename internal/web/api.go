package web

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/peterkuimelis/biolab/internal/game"
	labnet "github.com/peterkuimelis/biolab/internal/net"
)

// CategoryInfo is the JSON representation of one catalog category.
type CategoryInfo struct {
	Suit  string     `json:"suit"`
	Color string     `json:"color"`
	Cards []CardInfo `json:"cards"`
}

// CardInfo is one catalog card.
type CardInfo struct {
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// RecipeInfo is one entry of either recipe table.
type RecipeInfo struct {
	Ingredients [2]string `json:"ingredients"`
	Result      string    `json:"result"` // product or hazard effect
	Icon        string    `json:"icon,omitempty"`
	Color       string    `json:"color,omitempty"`
	Hazard      bool      `json:"hazard,omitempty"`
}

// CatalogResponse is the body of /api/catalog.
type CatalogResponse struct {
	Player     string         `json:"player"`
	Categories []CategoryInfo `json:"categories"`
	Recipes    []RecipeInfo   `json:"recipes"`
	Boss       BossInfo       `json:"boss"`
}

// BossInfo describes the boss encounter.
type BossInfo struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	HP        int    `json:"hp"`
	Ammo      string `json:"ammo"`
	Damage    int    `json:"damage"`
	Reward    string `json:"reward"`
}

// AwardsResponse is the body of /api/awards. Outside a game every award
// is still hidden, so the entries arrive masked.
type AwardsResponse struct {
	Total  int                `json:"total"`
	Awards []labnet.AwardView `json:"awards"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleCatalog(c echo.Context) error {
	rb := s.rules
	book := game.NewRecipeBook(rb.Recipes, rb.Hazards)
	recipes, hazards := book.Recipes(), book.Hazards()
	suits := rb.Catalog.Categories()

	resp := CatalogResponse{
		Player:     s.playerName(),
		Categories: make([]CategoryInfo, 0, len(suits)),
		Recipes:    make([]RecipeInfo, 0, len(recipes)+len(hazards)),
		Boss: BossInfo{
			Name:      rb.Boss.Name,
			Threshold: rb.Boss.Threshold,
			HP:        rb.Boss.HP,
			Ammo:      rb.Boss.Ammo,
			Damage:    rb.Boss.Damage,
			Reward:    rb.Boss.Reward,
		},
	}
	for _, suit := range suits {
		ci := CategoryInfo{Suit: string(suit), Color: rb.Catalog.Color(suit)}
		for i, name := range rb.Catalog.Names(suit) {
			ci.Cards = append(ci.Cards, CardInfo{Name: name, Rank: i + 1})
		}
		resp.Categories = append(resp.Categories, ci)
	}
	for _, r := range recipes {
		resp.Recipes = append(resp.Recipes, RecipeInfo{Ingredients: r.Ingredients, Result: r.Product, Icon: r.Icon, Color: r.Color})
	}
	for _, h := range hazards {
		resp.Recipes = append(resp.Recipes, RecipeInfo{Ingredients: h.Ingredients, Result: h.Effect, Icon: h.Icon, Color: h.Color, Hazard: true})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) handleAwards(c echo.Context) error {
	resp := AwardsResponse{Total: len(s.rules.Awards), Awards: make([]labnet.AwardView, 0, len(s.rules.Awards))}
	for _, def := range s.rules.Awards {
		v := game.ViewAward(game.Award{AwardDef: def})
		resp.Awards = append(resp.Awards, labnet.AwardView{Name: v.Name, Description: v.Description})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) playerName() string {
	if s.player != "" {
		return s.player
	}
	return s.rules.PlayerName()
}
