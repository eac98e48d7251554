package formatter

import (
	"fmt"
	"strings"

	"esgcompass/internal/repository"
)

// FormatProfileList renders stored profiles as an aligned listing.
func FormatProfileList(infos []repository.ProfileInfo) string {
	if len(infos) == 0 {
		return Dim("No saved profiles.")
	}

	nameWidth := len("NAME")
	for _, info := range infos {
		if len(info.Name) > nameWidth {
			nameWidth = len(info.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s\n",
		Dim(pad("NAME", nameWidth)), Dim(pad("FIELDS", 6)), Dim("UPDATED"))
	for _, info := range infos {
		updated := ""
		if !info.UpdatedAt.IsZero() {
			updated = info.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n",
			Bold(pad(info.Name, nameWidth)),
			pad(fmt.Sprintf("%d", info.FieldCount), 6),
			Dim(updated))
	}
	return strings.TrimRight(b.String(), "\n")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
