package debugviz

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/dshills/rogueforge/pkg/enrich"
	"github.com/dshills/rogueforge/pkg/geom"
	"github.com/dshills/rogueforge/pkg/model"
)

// Options configures a dungeon snapshot render.
type Options struct {
	CellSize     int    // pixel size of one terrain cell, default 12
	ShowRooms    bool   // outline room bounds by type
	ShowSpawns   bool   // mark enriched entity/item positions
	ShowLegend   bool   // draw a color legend
	Title        string // optional title drawn above the grid
	Margin       int    // canvas margin in pixels, default 40
}

// DefaultOptions returns sensible snapshot render defaults.
func DefaultOptions() Options {
	return Options{
		CellSize:   12,
		ShowRooms:  true,
		ShowSpawns: true,
		ShowLegend: true,
		Title:      "Dungeon Snapshot",
		Margin:     40,
	}
}

// RenderDungeon rasterizes d's terrain, room outlines, and result's
// enriched spawns into an SVG document.
func RenderDungeon(d *model.Dungeon, result *enrich.Result, opts Options) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("debugviz: dungeon cannot be nil")
	}
	if opts.CellSize <= 0 {
		opts.CellSize = 12
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	headerHeight := 0
	if opts.Title != "" {
		headerHeight = 30
	}
	legendWidth := 0
	if opts.ShowLegend {
		legendWidth = 160
	}

	width := d.Width*opts.CellSize + 2*opts.Margin + legendWidth
	height := d.Height*opts.CellSize + 2*opts.Margin + headerHeight

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#0d0d14")

	originX := opts.Margin
	originY := opts.Margin + headerHeight

	drawTerrain(canvas, d, originX, originY, opts.CellSize)
	if opts.ShowRooms {
		drawRooms(canvas, d, originX, originY, opts.CellSize)
	}
	if opts.ShowSpawns && result != nil {
		drawSpawns(canvas, result, originX, originY, opts.CellSize)
	}
	if opts.Title != "" {
		canvas.Text(width/2, 20, opts.Title,
			"text-anchor:middle;font-size:16px;font-weight:bold;fill:#e2e8f0;font-family:sans-serif")
	}
	if opts.ShowLegend {
		drawLegend(canvas, width-legendWidth+10, originY)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveToFile renders d and writes the SVG to filepath with 0644 permissions.
func SaveToFile(d *model.Dungeon, result *enrich.Result, filepath string, opts Options) error {
	data, err := RenderDungeon(d, result, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

func drawTerrain(canvas *svg.SVG, d *model.Dungeon, originX, originY, cell int) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			kind := geom.TileKind(d.Terrain[y*d.Width+x])
			color := tileColor(kind)
			if color == "" {
				continue // walls render as the background color
			}
			canvas.Rect(originX+x*cell, originY+y*cell, cell, cell, fmt.Sprintf("fill:%s", color))
		}
	}
}

func tileColor(kind geom.TileKind) string {
	switch kind {
	case geom.TileFloor:
		return "#3a3a4e"
	case geom.TileDoor:
		return "#9f7aea"
	case geom.TileWater:
		return "#4299e1"
	case geom.TileLava:
		return "#f56565"
	default:
		return ""
	}
}

func drawRooms(canvas *svg.SVG, d *model.Dungeon, originX, originY, cell int) {
	for _, r := range d.Rooms {
		color := roomOutlineColor(r.Type)
		x := originX + r.Bounds.X*cell
		y := originY + r.Bounds.Y*cell
		w := r.Bounds.Width * cell
		h := r.Bounds.Height * cell
		canvas.Rect(x, y, w, h, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2", color))
	}
}

func roomOutlineColor(t model.RoomType) string {
	switch t {
	case model.RoomEntrance:
		return "#48bb78"
	case model.RoomExit:
		return "#f56565"
	case model.RoomTreasure:
		return "#ffd700"
	case model.RoomBoss:
		return "#9f7aea"
	case model.RoomLibrary:
		return "#4299e1"
	case model.RoomArmory:
		return "#ed8936"
	case model.RoomCavern:
		return "#718096"
	default:
		return "#a0aec0"
	}
}

func drawSpawns(canvas *svg.SVG, result *enrich.Result, originX, originY, cell int) {
	for _, e := range result.Entities {
		cx := originX + e.Position.X*cell + cell/2
		cy := originY + e.Position.Y*cell + cell/2
		canvas.Circle(cx, cy, cell/3, "fill:#f56565;stroke:#fff;stroke-width:1")
	}
	for _, it := range result.Items {
		cx := originX + it.Position.X*cell + cell/2
		cy := originY + it.Position.Y*cell + cell/2
		canvas.Circle(cx, cy, cell/4, "fill:#ffd700;stroke:#fff;stroke-width:1")
	}
}

func drawLegend(canvas *svg.SVG, x, y int) {
	entries := []struct {
		label string
		color string
	}{
		{"floor", tileColor(geom.TileFloor)},
		{"door", tileColor(geom.TileDoor)},
		{"water", tileColor(geom.TileWater)},
		{"lava", tileColor(geom.TileLava)},
		{"entrance room", roomOutlineColor(model.RoomEntrance)},
		{"exit room", roomOutlineColor(model.RoomExit)},
		{"treasure room", roomOutlineColor(model.RoomTreasure)},
		{"boss room", roomOutlineColor(model.RoomBoss)},
	}
	canvas.Text(x, y, "Legend", "font-size:13px;font-weight:bold;fill:#e2e8f0")
	y += 18
	for _, e := range entries {
		canvas.Rect(x, y-10, 12, 12, fmt.Sprintf("fill:%s", e.color))
		canvas.Text(x+18, y, e.label, "font-size:11px;fill:#cbd5e0")
		y += 18
	}
	y += 10
	canvas.Circle(x+6, y-4, 4, "fill:#f56565;stroke:#fff;stroke-width:1")
	canvas.Text(x+18, y, "entity", "font-size:11px;fill:#cbd5e0")
	y += 18
	canvas.Circle(x+6, y-4, 3, "fill:#ffd700;stroke:#fff;stroke-width:1")
	canvas.Text(x+18, y, "item", "font-size:11px;fill:#cbd5e0")
}
