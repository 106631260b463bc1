package geometry

import (
	"encoding/json"
	"strconv"
	"strings"

	geojson "github.com/paulmach/go.geojson"
)

// point - вершина кольца в порядке lat/lng
type point struct {
	lat float64
	lng float64
}

// ContainsPoint проверяет методом трассировки луча, попадает ли точка
// внутрь границы геозоны. Граница может быть GeoJSON Polygon/MultiPolygon
// либо одним из унаследованных форматов: массив строк "lat,lng" или
// массив пар [lat,lng].
//
// Для MultiPolygon проверяется только внешнее кольцо первого полигона -
// унаследованное ограничение, сохраненное намеренно: его исправление
// поменяло бы, какие тревоги попадают в какие геозоны.
//
// Любой некорректный вход означает "не попадает", а не ошибку:
// это предикат наилучшего усилия, а не валидатор.
func ContainsPoint(lat, lng float64, boundary json.RawMessage) bool {
	ring := extractRing(boundary)
	if len(ring) < 3 {
		return false
	}

	inside := false
	x, y := lng, lat
	n := len(ring)

	for i := 0; i < n; i++ {
		j := (i - 1 + n) % n
		xi, yi := ring[i].lng, ring[i].lat
		xj, yj := ring[j].lng, ring[j].lat

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}

	return inside
}

// extractRing извлекает единственное кольцо вершин из границы.
// Возвращает nil, если граница пуста или не разбирается.
func extractRing(boundary json.RawMessage) []point {
	if len(boundary) == 0 {
		return nil
	}

	// Сначала пробуем GeoJSON-форму {type, coordinates}
	if g, err := geojson.UnmarshalGeometry(boundary); err == nil {
		return ringFromGeometry(g)
	}

	// Унаследованные формы: массив строк "lat,lng" или пар [lat,lng]
	return ringFromLegacy(boundary)
}

func ringFromGeometry(g *geojson.Geometry) []point {
	var coords [][]float64

	switch {
	case g.IsPolygon():
		if len(g.Polygon) == 0 {
			return nil
		}
		coords = g.Polygon[0]
	case g.IsMultiPolygon():
		// Только внешнее кольцо первого полигона
		if len(g.MultiPolygon) == 0 || len(g.MultiPolygon[0]) == 0 {
			return nil
		}
		coords = g.MultiPolygon[0][0]
	default:
		return nil
	}

	ring := make([]point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		// GeoJSON-координаты идут в порядке [lng, lat]
		ring = append(ring, point{lat: c[1], lng: c[0]})
	}
	return ring
}

func ringFromLegacy(boundary json.RawMessage) []point {
	var items []json.RawMessage
	if err := json.Unmarshal(boundary, &items); err != nil {
		return nil
	}

	ring := make([]point, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			// Формат "lat,lng"
			parts := strings.Split(s, ",")
			if len(parts) != 2 {
				continue
			}
			latVal, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			lngVal, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if latErr != nil || lngErr != nil {
				continue
			}
			ring = append(ring, point{lat: latVal, lng: lngVal})
			continue
		}

		var pair []float64
		if err := json.Unmarshal(item, &pair); err == nil && len(pair) == 2 {
			// Формат [lat, lng]
			ring = append(ring, point{lat: pair[0], lng: pair[1]})
		}
	}
	return ring
}
