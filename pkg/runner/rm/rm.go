package rm

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"tableflip.dev/scriv/pkg/store"
)

// Rm deletes a document, prompting for confirmation unless forced.
type Rm struct {
	Title       string
	Force       bool
	Persistence store.Persistence
}

func (r *Rm) Do(ctx context.Context) error {
	if r.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	if !r.Force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete %q", r.Title),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := r.Persistence.DeleteDocument(r.Title); err != nil {
		return err
	}
	fmt.Printf("deleted %q\n", r.Title)
	return nil
}
