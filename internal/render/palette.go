package render

import "image/color"

// Cell codes written by Rasterize. Later codes draw over earlier ones.
const (
	CellEmpty uint8 = iota
	CellCircle
	CellMoving
	CellBurnt
	CellNode
	CellPickup
	CellTaken
	CellAgent1
	CellAgent2
	CellArmed
	cellCount
)

// Palette maps cell codes to colors. It is shared by every renderer.
var Palette = []color.RGBA{
	CellEmpty:  {R: 10, G: 12, B: 18, A: 255},
	CellCircle: {R: 120, G: 170, B: 230, A: 255},
	CellMoving: {R: 150, G: 120, B: 230, A: 255},
	CellBurnt:  {R: 60, G: 60, B: 70, A: 255},
	CellNode:   {R: 200, G: 200, B: 210, A: 255},
	CellPickup: {R: 255, G: 200, B: 40, A: 255},
	CellTaken:  {R: 110, G: 90, B: 40, A: 255},
	CellAgent1: {R: 90, G: 240, B: 120, A: 255},
	CellAgent2: {R: 250, G: 90, B: 110, A: 255},
	CellArmed:  {R: 255, G: 255, B: 255, A: 255},
}

// Glyphs maps cell codes to terminal runes.
var Glyphs = []rune{
	CellEmpty:  ' ',
	CellCircle: '·',
	CellMoving: '∘',
	CellBurnt:  '.',
	CellNode:   '+',
	CellPickup: '◆',
	CellTaken:  '◇',
	CellAgent1: '@',
	CellAgent2: '&',
	CellArmed:  '*',
}

// AgentCell returns the cell code for agent i.
func AgentCell(i int) uint8 {
	if i == 0 {
		return CellAgent1
	}
	return CellAgent2
}
