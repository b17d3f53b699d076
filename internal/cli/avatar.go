package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/media"
	"github.com/dustin/go-humanize"
)

// readFile is a test seam.
var readFile = os.ReadFile

// Avatar uploads the picture at args[0] as the profile picture. Without
// arguments it describes the current one.
func (a *App) Avatar(ctx context.Context, args []string) error {
	userID := a.session.UserID

	if len(args) == 0 {
		data, contentType, err := a.profiles.OpenProfilePicture(ctx, userID)
		if errors.Is(err, media.ErrOtherBackend) {
			fmt.Fprintln(a.out, "Your profile picture was saved with a different media backend. Upload it again with: avatar <path>")
			return nil
		}
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintln(a.out, "No profile picture yet. Use: avatar <path>")
			return nil
		}
		if err != nil {
			return a.report(ctx, err)
		}
		fmt.Fprintf(a.out, "Profile picture: %s, %s\n", contentType, humanize.Bytes(uint64(len(data))))
		return nil
	}

	data, err := readFile(args[0])
	if err != nil {
		fmt.Fprintf(a.out, "Error: cannot read %s: %v\n", args[0], err)
		return err
	}

	if err := a.simulate(ctx); err != nil {
		return a.report(ctx, err)
	}

	if _, err := a.profiles.SetProfilePicture(ctx, userID, http.DetectContentType(data), data); err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Profile picture updated (%s).\n", humanize.Bytes(uint64(len(data))))
	return nil
}
