package cli

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/landquant/severance/internal/engine"
)

// writeHumanSummary prints a short reviewer-oriented digest of one output
// record. The JSON record remains the contract; this is a courtesy view with
// thousands-separated currency figures.
func writeHumanSummary(w io.Writer, s *engine.Summary) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Severance damages summary")
	p.Fprintf(w, "  Access damages:        $%.2f\n", s.AccessDamages.TotalAccessDamages)
	p.Fprintf(w, "  Shape damages:         $%.2f\n", s.ShapeDamages.TotalShapeDamages)
	p.Fprintf(w, "  Utility damages:       $%.2f\n", s.UtilityDamages.TotalUtilityDamages)
	if s.FarmDamages != nil {
		p.Fprintf(w, "  Farm damages:          $%.2f\n", s.FarmDamages.TotalFarmDamages)
	}
	p.Fprintf(w, "  Total severance:       $%.2f\n", s.TotalSeveranceDamages)
	fmt.Fprintln(w)
	p.Fprintf(w, "  Remainder before:      $%.2f\n", s.BeforeValueRemainderProportionate)
	p.Fprintf(w, "  Remainder after:       $%.2f\n", s.AfterValueRemainder)
	p.Fprintf(w, "  Value of land taken:   $%.2f\n", s.BeforeValueTaken)

	for _, warning := range s.Warnings {
		fmt.Fprintf(w, "  ! %s\n", warning)
	}
}
