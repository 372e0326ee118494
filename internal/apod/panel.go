package apod

// State is the lifecycle of the picture panel.
type State int

const (
	StateLoading State = iota
	StateReady
	StateOffline
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Placeholder images and fixed copy for non-ready states.
const (
	LoadingTitle     = "Fetching Cosmic Data..."
	LoadingImage     = "https://placehold.co/400x200/222/FFF?text=Fetching+Image"
	VideoPlaceholder = "https://placehold.co/400x200/A5B4FC/E0E0FF?text=Video+of+Day"
	OfflineTitle     = "Cosmic Data Unavailable"
	OfflineImage     = "https://placehold.co/400x200/F472B6/E0E0FF?text=Lost+Contact"
	OfflineText      = "The telescope is temporarily offline. Please check your connection or try again later."

	imageCaptionLimit = 200
	videoCaptionLimit = 150
	videoCaptionTail  = "... (open the link to view video)"
)

// Display is what the picture panel renders.
type Display struct {
	State     State  `json:"state"`
	Title     string `json:"title"`
	MediaType string `json:"media_type,omitempty"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	Caption   string `json:"caption"`
	// Link is the page to open for videos.
	Link string `json:"link,omitempty"`
	Date string `json:"date,omitempty"`
}

// Loading returns the interim state shown while a fetch is in flight.
func Loading() Display {
	return Display{
		State:    StateLoading,
		Title:    LoadingTitle,
		ImageURL: LoadingImage,
	}
}

// Offline returns the state shown when the fetch failed.
func Offline() Display {
	return Display{
		State:    StateOffline,
		Title:    OfflineTitle,
		ImageURL: OfflineImage,
		AltText:  OfflineTitle,
		Caption:  OfflineText,
	}
}

// Panel maps a fetch result to display state.
func Panel(pic *Picture, err error) Display {
	if err != nil || pic == nil {
		return Offline()
	}
	// An image with nothing to show is treated as a failed fetch.
	if pic.MediaType != MediaVideo && pic.HDURL == "" && pic.URL == "" {
		return Offline()
	}

	d := Display{
		State:     StateReady,
		Title:     pic.Title,
		MediaType: pic.MediaType,
		Date:      pic.Date,
	}

	if pic.MediaType == MediaVideo {
		d.ImageURL = pic.ThumbnailURL
		if d.ImageURL == "" {
			d.ImageURL = VideoPlaceholder
		}
		d.AltText = "Video of the Day Thumbnail"
		d.Caption = truncate(pic.Explanation, videoCaptionLimit) + videoCaptionTail
		d.Link = pic.URL
		return d
	}

	d.ImageURL = pic.HDURL
	if d.ImageURL == "" {
		d.ImageURL = pic.URL
	}
	d.AltText = pic.Title
	d.Caption = truncate(pic.Explanation, imageCaptionLimit) + "..."
	return d
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
