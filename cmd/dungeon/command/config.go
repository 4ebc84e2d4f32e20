package command

import (
	"github.com/pixil98/go-errors"
)

type Config struct {
	Storage StorageConfig `json:"storage"`
	Game    GameConfig    `json:"game"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Storage.Validate())
	el.Add(c.Game.Validate())

	return el.Err()
}
