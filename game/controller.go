package game

import (
	"context"
	"fmt"
)

type GameController struct {
	service GameService
}

func NewGameController(service GameService) *GameController {
	return &GameController{service: service}
}

func (c *GameController) StartGame(ctx context.Context) error {
	return c.service.Run(ctx)
}

func (c *GameController) TerminateGame() {
	fmt.Println("Terminating the game...")
}
