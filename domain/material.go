package domain

// Attached media metadata for a learning object. None of these fields are
// validated by the model; they describe externally managed files and links.

// File describes an uploaded file attached to a learning object.
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FileType string `json:"fileType"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

// URL is a titled external link attached to a learning object.
type URL struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FolderDescription annotates a folder within a learning object's
// uploaded materials.
type FolderDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PDF points at the generated PDF rendition of a learning object.
type PDF struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Material bundles all media attached to a learning object.
type Material struct {
	Files              []File              `json:"files"`
	URLs               []URL               `json:"urls"`
	Notes              string              `json:"notes"`
	FolderDescriptions []FolderDescription `json:"folderDescriptions"`
	PDF                PDF                 `json:"pdf"`
}

// Metrics carries usage counters maintained by the hosting application.
type Metrics struct {
	Saves     int64 `json:"saves"`
	Downloads int64 `json:"downloads"`
}

func cloneMaterial(m Material) Material {
	out := m
	if m.Files != nil {
		out.Files = make([]File, len(m.Files))
		copy(out.Files, m.Files)
	}
	if m.URLs != nil {
		out.URLs = make([]URL, len(m.URLs))
		copy(out.URLs, m.URLs)
	}
	if m.FolderDescriptions != nil {
		out.FolderDescriptions = make([]FolderDescription, len(m.FolderDescriptions))
		copy(out.FolderDescriptions, m.FolderDescriptions)
	}
	return out
}
