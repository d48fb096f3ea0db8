package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized stickerhabit storage at: %s\n", ctx.Provider.Path())
	fmt.Println("You start with 1 gacha ticket. Run 'stickerhabit gacha' to draw your first sticker!")
	return nil
}
