package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lost-found-pets/internal/geo"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
)

// DefaultLimit es el tamaño máximo de foto aceptado.
const DefaultLimit int64 = 5 << 20 // 5MB

var (
	ErrEmpty    = errors.New("photo is empty")
	ErrTooLarge = errors.New("photo is too large")
	ErrNotImage = errors.New("file is not an image")
)

// DataURL lee el archivo completo y lo devuelve como data URL
// (data:<mime>;base64,...), igual a lo que guarda un post.
func DataURL(r io.Reader, limit int64) (string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	b, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if len(b) == 0 {
		return "", ErrEmpty
	}
	if int64(len(b)) > limit {
		return "", ErrTooLarge
	}

	mime := http.DetectContentType(b)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), nil
}

// Decode devuelve los bytes de una data URL en base64.
func Decode(dataURL string) ([]byte, bool) {
	if !strings.HasPrefix(dataURL, "data:") {
		return nil, false
	}
	meta, payload, ok := strings.Cut(dataURL, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, false
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Coordinates saca la posición GPS del EXIF de la foto, si la tiene.
func Coordinates(dataURL string) (geo.LatLng, bool) {
	b, ok := Decode(dataURL)
	if !ok {
		return geo.LatLng{}, false
	}
	return coordinatesFromBytes(b)
}

func coordinatesFromBytes(b []byte) (geo.LatLng, bool) {
	raw, err := exif.SearchAndExtractExif(b)
	if err != nil || raw == nil {
		return geo.LatLng{}, false
	}

	entries, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return geo.LatLng{}, false
	}

	var (
		lat, lng       []exifcommon.Rational
		latRef, lngRef string
	)
	for _, e := range entries {
		switch e.TagName {
		case "GPSLatitude":
			lat, _ = e.Value.([]exifcommon.Rational)
		case "GPSLongitude":
			lng, _ = e.Value.([]exifcommon.Rational)
		case "GPSLatitudeRef":
			latRef, _ = e.Value.(string)
		case "GPSLongitudeRef":
			lngRef, _ = e.Value.(string)
		}
	}

	latDeg, ok := degrees(lat)
	if !ok {
		return geo.LatLng{}, false
	}
	lngDeg, ok := degrees(lng)
	if !ok {
		return geo.LatLng{}, false
	}
	if strings.EqualFold(strings.TrimSpace(latRef), "S") {
		latDeg = -latDeg
	}
	if strings.EqualFold(strings.TrimSpace(lngRef), "W") {
		lngDeg = -lngDeg
	}

	pos := geo.LatLng{Lat: latDeg, Lng: lngDeg}
	if !pos.Valid() {
		return geo.LatLng{}, false
	}
	return pos, true
}

// degrees convierte grados/minutos/segundos EXIF a grados decimales.
func degrees(dms []exifcommon.Rational) (float64, bool) {
	if len(dms) != 3 {
		return 0, false
	}
	var out float64
	for i, div := range []float64{1, 60, 3600} {
		if dms[i].Denominator == 0 {
			return 0, false
		}
		out += float64(dms[i].Numerator) / float64(dms[i].Denominator) / div
	}
	return out, true
}
