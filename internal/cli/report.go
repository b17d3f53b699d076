package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/dmitrijs2005/back2me/internal/common"
	"github.com/dmitrijs2005/back2me/internal/services"
	"github.com/dmitrijs2005/back2me/internal/validation"
)

// report prints a user-facing description of err and returns err unchanged.
// Storage failures and unexpected errors are also logged.
func (a *App) report(ctx context.Context, err error) error {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintln(a.out, "Please fix the following:")
		for _, field := range slices.Sorted(maps.Keys(verrs)) {
			fmt.Fprintf(a.out, "  %s: %s\n", field, verrs[field])
		}
	case errors.Is(err, common.ErrorStorageUnavailable):
		a.log.Error(ctx, "storage unavailable", "error", err)
		fmt.Fprintln(a.out, "Storage is unavailable. Restart the client and try again.")
	case services.IsAccountError(err):
		fmt.Fprintln(a.out, capitalize(rootCause(err).Error())+".")
	case errors.Is(err, common.ErrorNotFound):
		fmt.Fprintln(a.out, "Not found.")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(a.out, "Cancelled.")
	default:
		a.log.Error(ctx, "command failed", "error", err)
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
	return err
}

// rootCause returns the account sentinel wrapped in err, if any.
func rootCause(err error) error {
	for _, s := range []error{
		common.ErrorDuplicateEmail,
		common.ErrorDuplicateUsername,
		common.ErrorInvalidCredentials,
		common.ErrorWrongPassword,
	} {
		if errors.Is(err, s) {
			return s
		}
	}
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
