package entities

type Icon struct {
	Name        string `json:"name"`
	URL         string `json:"iconUrl"`
	Size        [2]int `json:"iconSize"`
	Anchor      [2]int `json:"iconAnchor"`
	PopupAnchor [2]int `json:"popupAnchor"`
}

func NewMarkerIcon(name, url string) Icon {
	return Icon{
		Name:        name,
		URL:         url,
		Size:        [2]int{30, 30},
		Anchor:      [2]int{15, 30},
		PopupAnchor: [2]int{0, -30},
	}
}
