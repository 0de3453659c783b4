package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/turnos-go/pkg/turnos/models"
)

// solidPattern is the OOXML pattern id of a solid fill.
const solidPattern = 1

// FillColor returns the RGB hex ("RRGGBB", upper case) of a cell's solid
// fill, or "" when the cell has no solid fill. Row and column are 0-based.
func (b *Book) FillColor(sheet string, row, col int) (string, error) {
	style, err := b.cellStyle(sheet, row, col)
	if err != nil {
		return "", err
	}
	if style == nil || style.Fill.Type != "pattern" || style.Fill.Pattern != solidPattern {
		return "", nil
	}
	if len(style.Fill.Color) == 0 {
		return "", nil
	}
	return normalizeHex(style.Fill.Color[0]), nil
}

// normalizeHex turns "#ff0000" or ARGB "FFFF0000" into "FF0000".
func normalizeHex(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	if len(c) != 6 {
		return ""
	}
	return c
}

// ClassifyFill maps a fill colour to an appointment kind. Red shades mark
// surgery; green and yellow shades mark lab work. White, black and unknown
// colours carry no kind.
func ClassifyFill(hex string) models.Kind {
	hex = normalizeHex(hex)
	if hex == "" || hex == "FFFFFF" || hex == "000000" {
		return models.KindNone
	}
	r, g, b, ok := splitRGB(hex)
	if !ok {
		return models.KindNone
	}

	switch {
	case r == 0xFF && g < 50 && b < 50:
		return models.KindSurgery
	case r == 0 && g > 100:
		return models.KindLabWork
	case r > 240 && g > 240 && b < 50:
		return models.KindLabWork
	case r < 50 && g > 150:
		return models.KindLabWork
	case r > 200 && g < 100 && b < 100:
		return models.KindSurgery
	}
	return models.KindNone
}

func splitRGB(hex string) (r, g, b uint64, ok bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return v>>16&0xFF, v>>8&0xFF, v&0xFF, true
}
