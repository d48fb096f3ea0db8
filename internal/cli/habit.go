package cli

import (
	"fmt"
	"time"
)

type HabitAddCmd struct {
	Name  string `arg:"" help:"Habit name (1-30 characters)."`
	Icon  string `short:"i" help:"Emoji shown next to the habit." default:"✨"`
	Color string `short:"c" help:"Accent color (hex)." default:"#a8d8ea"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	if err := store.Tick(time.Now()); err != nil {
		return err
	}

	habit, err := store.AddHabit(c.Name, c.Icon, c.Color, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", habit.Icon, habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	habits := store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'stickerhabit habit add <name>'")
		return nil
	}

	today := time.Now().Format("2006-01-02")
	fmt.Println("Habits:")
	for _, h := range habits {
		doneMark := " "
		if store.HasCompletionOn(h.ID, today) {
			doneMark = "✓"
		}
		fmt.Printf("  [%s] %s %-30s  streak %d, total %d days\n",
			doneMark, h.Icon, h.Name, h.Streak, h.TotalDays)
		fmt.Printf("      ID: %s\n", h.ID)
	}
	return nil
}

type HabitRemoveCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}
	defer ctx.Provider.Close()

	if err := store.Tick(time.Now()); err != nil {
		return err
	}

	habit, err := resolveHabit(store, c.Habit)
	if err != nil {
		return err
	}

	if err := store.RemoveHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Removed habit: %s (completion history deleted)\n", habit.Name)
	return nil
}
