package gallery

import "context"

// demoFiles is the fixed sample set shown when no real folder is connected.
var demoFiles = []MediaFile{
	{ID: "1", Name: "Wedding_Couple_Portrait.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1511285560982-1351cdeb9820?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1511285560982-1351cdeb9820?auto=format&fit=crop&w=1920&q=80"},
	{ID: "2", Name: "Bride_Preparation.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&w=1920&q=80"},
	{ID: "3", Name: "Ring_Detail_Shot.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1515934751635-c81c6bc9a2d8?auto=format&fit=crop&w=1920&q=80"},
	{ID: "4", Name: "Ceremony_Decor.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1519225421980-715cb0202128?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1519225421980-715cb0202128?auto=format&fit=crop&w=1920&q=80"},
	{ID: "5", Name: "Wedding_Party_Fun.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&w=1920&q=80"},
	{ID: "6", Name: "Reception_Cake.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1520854221256-17451cc330e7?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1520854221256-17451cc330e7?auto=format&fit=crop&w=1920&q=80"},
	{ID: "7", Name: "Groom_Getting_Ready.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=1920&q=80"},
	{ID: "8", Name: "Dance_Floor.jpg", MimeType: "image/jpeg",
		ThumbnailURL: "https://images.unsplash.com/photo-1545167622-3a6ac156f422?auto=format&fit=crop&w=600&q=80",
		ViewURL:      "https://images.unsplash.com/photo-1545167622-3a6ac156f422?auto=format&fit=crop&w=1920&q=80"},
}

// DemoBrowser serves the built-in sample folder.
type DemoBrowser struct{}

func NewDemoBrowser() *DemoBrowser {
	return &DemoBrowser{}
}

func (DemoBrowser) ListFiles(ctx context.Context) ([]MediaFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]MediaFile, len(demoFiles))
	copy(out, demoFiles)
	return out, nil
}
