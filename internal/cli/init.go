package cli

import (
	"fmt"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage exists." default:"false"`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		if !c.Force {
			return err
		}
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	fmt.Printf("Initialized storage at %s\n", ctx.Store.GetConfigPath())
	return nil
}
