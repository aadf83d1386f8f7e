package tui

import (
	"github.com/theirongolddev/cbudget/internal/cli"
	"github.com/theirongolddev/cbudget/internal/tui/components"
)

func (a App) renderRegionsTab(cw int) string {
	inner := components.CardInnerWidth(cw)
	body := components.Infographic(a.bars, inner, infographicRows) +
		"\n\n" + cli.RenderNote("Gasto médio mensal por região. Altura relativa à maior região.")
	return components.ContentCard("Regiões", body, cw, false)
}
