package espn

// Document is a loosely-typed JSON object from the ESPN API. The API is
// unversioned and its field set shifts over time, so every access goes
// through an accessor with an explicit zero default instead of structural
// decoding.
type Document map[string]interface{}

// Str returns the string at key, or "" when absent or not a string.
func (d Document) Str(key string) string {
	if v, ok := d[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// StrOr returns the string at key, or def when absent or empty.
func (d Document) StrOr(key, def string) string {
	if s := d.Str(key); s != "" {
		return s
	}
	return def
}

// Doc returns the nested object at key, or an empty Document.
func (d Document) Doc(key string) Document {
	if v, ok := d[key]; ok {
		if m, ok := v.(map[string]interface{}); ok {
			return Document(m)
		}
	}
	return Document{}
}

// Docs returns the array of objects at key. Non-object elements are
// dropped.
func (d Document) Docs(key string) []Document {
	v, ok := d[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]interface{})
	if !ok {
		return nil
	}

	docs := make([]Document, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]interface{}); ok {
			docs = append(docs, Document(m))
		}
	}
	return docs
}

// Has reports whether key is present at all.
func (d Document) Has(key string) bool {
	_, ok := d[key]
	return ok
}
