// cmd/storefront/snapshot.go
package main

import (
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javajoker/artwork-storefront/internal/storefront"
)

var snapshotOut string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the storefront page to an HTML file",
	Long: `Loads the gallery and the menu once and writes the page with an empty
cart. Load failures end up inline in the page, as they would in a browser.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := storefront.NewHTMLRenderer(lang)
		if err != nil {
			return err
		}
		display := storefront.NewMemoryDisplay()
		session := newSession(renderer, display)
		_ = session.Start(cmd.Context())

		if snapshotOut == "-" {
			return writePage(cmd.OutOrStdout(), display)
		}

		f, err := os.Create(snapshotOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", snapshotOut, err)
		}
		if err := writePage(f, display); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", snapshotOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", snapshotOut)
		return nil
	},
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "storefront.html", `output file, "-" for stdout`)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head><meta charset="utf-8"><title>Storefront</title></head>
<body>
<section id="gallery-container">{{.Gallery}}</section>
<section id="product-container">{{.Menu}}</section>
<aside id="cart-items">{{.Cart}}</aside>
<aside id="product-detail-content">{{.Detail}}</aside>
</body>
</html>
`))

type page struct {
	Lang    string
	Gallery template.HTML
	Menu    template.HTML
	Cart    template.HTML
	Detail  template.HTML
}

// writePage stitches the rendered regions into one document. Region content
// was produced by the HTML renderer and is already escaped.
func writePage(w io.Writer, display *storefront.MemoryDisplay) error {
	return pageTemplate.Execute(w, page{
		Lang:    lang,
		Gallery: template.HTML(display.Content(storefront.RegionGallery)),
		Menu:    template.HTML(display.Content(storefront.RegionMenu)),
		Cart:    template.HTML(display.Content(storefront.RegionCart)),
		Detail:  template.HTML(display.Content(storefront.RegionDetail)),
	})
}
