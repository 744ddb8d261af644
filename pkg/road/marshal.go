package road

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Marshal renders records as back-to-back object literals, one per line.
// No records renders as an empty slice.
func Marshal(records []Record) []byte {
	var buf bytes.Buffer
	for i := range records {
		writeRecord(&buf, &records[i])
	}
	return buf.Bytes()
}

// WriteRecords renders records and writes them to w in a single call.
func WriteRecords(w io.Writer, records []Record) (int, error) {
	return w.Write(Marshal(records))
}

// objectWriter emits the comma-separated members of one object literal.
type objectWriter struct {
	buf   *bytes.Buffer
	first bool
}

func (o *objectWriter) key(name string) {
	if !o.first {
		o.buf.WriteByte(',')
	}
	o.first = false
	o.buf.WriteString(quote(name))
	o.buf.WriteByte(':')
}

func (o *objectWriter) str(name, v string) {
	o.key(name)
	o.buf.WriteString(quote(v))
}

func (o *objectWriter) float(name string, v float64) {
	o.key(name)
	o.buf.WriteString(formatFloat(v))
}

func (o *objectWriter) integer(name string, v int) {
	o.key(name)
	o.buf.WriteString(strconv.Itoa(v))
}

// flag writes name:true, or nothing at all when v is false.
func (o *objectWriter) flag(name string, v bool) {
	if !v {
		return
	}
	o.key(name)
	o.buf.WriteString("true")
}

func (o *objectWriter) floats(name string, vs ...float64) {
	o.key(name)
	writeFloatArray(o.buf, vs...)
}

func writeRecord(buf *bytes.Buffer, r *Record) {
	buf.WriteByte('{')
	o := &objectWriter{buf: buf, first: true}

	o.str("class", r.Class)
	o.str("persistentId", r.PersistentID)
	o.str("__parent", r.Parent)
	o.floats("position", r.Position.X, r.Position.Y, r.Position.Z)
	o.float("breakAngle", r.BreakAngle)
	o.float("decalBias", r.DecalBias)
	o.float("detail", r.Detail)
	o.floats("distanceFade", r.DistanceFade[0], r.DistanceFade[1])
	o.float("drivability", r.Drivability)
	o.flag("endTangent", r.EndTangent)
	o.flag("flipDirection", r.FlipDirection)
	o.flag("gatedRoad", r.GatedRoad)
	o.flag("hiddenInNavi", r.HiddenInNavi)
	o.flag("improvedSpline", r.ImprovedSpline)
	o.integer("lanesLeft", r.LanesLeft)
	o.integer("lanesRight", r.LanesRight)
	o.flag("looped", r.Looped)
	o.str("material", r.Material)

	o.key("nodes")
	buf.WriteByte('[')
	for i, n := range r.Nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeFloatArray(buf, n.X, n.Y, n.Z, n.Radius)
	}
	buf.WriteByte(']')

	o.flag("oneWay", r.OneWay)
	o.flag("overObjects", r.OverObjects)
	o.integer("renderPriority", r.RenderPriority)
	o.float("smoothness", r.Smoothness)
	o.floats("startEndFade", r.StartEndFade[0], r.StartEndFade[1])
	o.flag("startTangent", r.StartTangent)
	o.float("textureLength", r.TextureLength)
	o.float("zBias", r.ZBias)

	buf.WriteString("}\n")
}

func writeFloatArray(buf *bytes.Buffer, vs ...float64) {
	buf.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(formatFloat(v))
	}
	buf.WriteByte(']')
}

// formatFloat writes the shortest decimal that round-trips, keeping a
// fractional part on integral values (10 -> "10.0").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.ContainsAny(s, ".NI") {
		return s
	}
	return s + ".0"
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string cannot fail.
		return strconv.Quote(s)
	}
	return string(b)
}
