package editing

// MaterialReference points at an uploaded file. It is owned by the material
// service; the converters only read it.
type MaterialReference struct {
	MaterialID string      `json:"materialId"`
	FilePath   string      `json:"filePath"`
	AccessURL  string      `json:"accessUrl"`
	MD5Hash    string      `json:"md5Hash"`
	OriginName string      `json:"originName"`
	IsRelative bool        `json:"isRelative"`
	Dimensions *Dimensions `json:"dimensions,omitempty"`
	Duration   *int        `json:"duration,omitempty"` // milliseconds
	Format     string      `json:"format,omitempty"`
}

// Dimensions is a material's intrinsic pixel size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// MaterialIndex looks up references by MaterialID.
type MaterialIndex map[string]MaterialReference

// IndexMaterials builds a lookup table. Later duplicates win.
func IndexMaterials(refs []MaterialReference) MaterialIndex {
	idx := make(MaterialIndex, len(refs))
	for _, r := range refs {
		if r.MaterialID == "" {
			continue
		}
		idx[r.MaterialID] = r
	}
	return idx
}

// Resolve returns the freshest reference for ref: the indexed entry when one
// exists for its MaterialID, otherwise ref itself. ok is false when ref is nil.
func (idx MaterialIndex) Resolve(ref *MaterialReference) (MaterialReference, bool) {
	if ref == nil {
		return MaterialReference{}, false
	}
	if r, ok := idx[ref.MaterialID]; ok && ref.MaterialID != "" {
		return r, true
	}
	return *ref, true
}
