package datastructure

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lng: lng,
	}
}

type BoundingBox struct {
	minLat, minLng float64
	maxLat, maxLng float64
}

func NewBoundingBox(minLat, minLng, maxLat, maxLng float64) *BoundingBox {
	return &BoundingBox{minLat: minLat,
		minLng: minLng,
		maxLat: maxLat,
		maxLng: maxLng}
}

func (b *BoundingBox) GetMinLat() float64 {
	return b.minLat
}

func (b *BoundingBox) GetMinLng() float64 {
	return b.minLng
}

func (b *BoundingBox) GetMaxLat() float64 {
	return b.maxLat
}

func (b *BoundingBox) GetMaxLng() float64 {
	return b.maxLng
}
