package preview

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/gogpu/spiro"
	"github.com/gogpu/spiro/internal/cache"
	"github.com/gogpu/spiro/internal/raster"
)

// Frame sizes accepted from query parameters.
const (
	minFrameSide = 16
	maxFrameSide = 2048
)

// frameCacheSize is the number of encoded frames kept across sessions.
const frameCacheSize = 128

// frameKey identifies an encoded frame. Static families ignore the tick,
// so their key always carries zero.
type frameKey struct {
	session string
	vec     spiro.Vector
	tick    float64
	width   int
	height  int
}

// ============================================================
// Preview Handler
// ============================================================

// Handler serves the preview routes and caches encoded frames.
type Handler struct {
	store   *Store
	frames  *cache.LRU[frameKey, []byte]
	presets spiro.Presets
	width   int
	height  int
}

// NewHandler creates a handler rendering width x height frames by default.
func NewHandler(store *Store, presets spiro.Presets, width, height int) *Handler {
	return &Handler{
		store:   store,
		frames:  cache.New[frameKey, []byte](frameCacheSize),
		presets: presets,
		width:   clampSide(width),
		height:  clampSide(height),
	}
}

// Register mounts the preview routes on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/families", h.Families)
	r.Get("/presets", h.Presets)
	r.Post("/sessions", h.CreateSession)
	r.Get("/sessions/:id", h.GetSession)
	r.Delete("/sessions/:id", h.DeleteSession)
	r.Patch("/sessions/:id/params", h.PatchParams)
	r.Post("/sessions/:id/reset", h.Reset)
	r.Get("/sessions/:id/frame.png", h.Frame)
	r.Get("/sessions/:id/segments", h.Segments)
}

type familyPayload struct {
	Name     string            `json:"name"`
	Animated bool              `json:"animated"`
	Field    bool              `json:"field"`
	Params   []spiro.ParamSpec `json:"params"`
}

type sessionPayload struct {
	ID     string            `json:"id"`
	Family string            `json:"family"`
	Params map[string]float64 `json:"params"`
	Modes  []spiro.Mode      `json:"modes,omitempty"`
}

type createRequest struct {
	Family string `json:"family"`
	Preset string `json:"preset"`
}

// patchRequest carries named values and 1-based mode toggles. The whole
// patch is applied or none of it is.
type patchRequest struct {
	Values  map[string]float64 `json:"values"`
	Enabled map[int]bool       `json:"enabled"`
}

type segmentPayload struct {
	A     [2]float64 `json:"a"`
	B     [2]float64 `json:"b"`
	Color string     `json:"color,omitempty"`
}

type fieldPayload struct {
	Rows int     `json:"rows"`
	Cols int     `json:"cols"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Families lists every family with its parameter schema.
func (h *Handler) Families(c fiber.Ctx) error {
	out := make([]familyPayload, 0, len(spiro.Families()))
	for _, f := range spiro.Families() {
		out = append(out, familyPayload{
			Name:     f.String(),
			Animated: f.Animated(),
			Field:    f.IsField(),
			Params:   f.Params(),
		})
	}
	return c.JSON(out)
}

// Presets lists the loaded preset names.
func (h *Handler) Presets(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"presets": h.presets.Names()})
}

// CreateSession opens a session at a family's defaults or at a preset.
func (h *Handler) CreateSession(c fiber.Ctx) error {
	req := createRequest{Family: spiro.Spirograph.String()}
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
		}
	}

	var v spiro.Vector
	if req.Preset != "" {
		p, ok := h.presets[req.Preset]
		if !ok {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "preset not found"})
		}
		v = p
	} else {
		f, err := spiro.ParseFamily(req.Family)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		v = spiro.DefaultVector(f)
	}

	sess, err := h.store.Create(v)
	switch {
	case errors.Is(err, ErrSessionLimit):
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return paramError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(describe(sess.ID, v))
}

// GetSession returns the session's current parameters.
func (h *Handler) GetSession(c fiber.Ctx) error {
	sess, ok := h.store.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	var v spiro.Vector
	_ = sess.With(func(s *spiro.State) error {
		v = s.Snapshot()
		return nil
	})
	return c.JSON(describe(sess.ID, v))
}

// DeleteSession closes the session.
func (h *Handler) DeleteSession(c fiber.Ctx) error {
	id := c.Params("id")
	if !h.store.Delete(id) {
		return notFound(c)
	}
	h.frames.DeleteFunc(func(k frameKey) bool { return k.session == id })
	return c.SendStatus(http.StatusNoContent)
}

// PatchParams applies named values and mode toggles atomically.
func (h *Handler) PatchParams(c fiber.Ctx) error {
	sess, ok := h.store.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	var req patchRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}

	var v spiro.Vector
	err := sess.With(func(s *spiro.State) error {
		next, err := req.apply(s.Snapshot())
		if err != nil {
			return err
		}
		if err := s.Replace(next); err != nil {
			return err
		}
		v = s.Snapshot()
		return nil
	})
	if err != nil {
		return paramError(c, err)
	}
	return c.JSON(describe(sess.ID, v))
}

func (r patchRequest) apply(v spiro.Vector) (spiro.Vector, error) {
	names := make([]string, 0, len(r.Values))
	for name := range r.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	var err error
	for _, name := range names {
		if v, err = v.With(name, r.Values[name]); err != nil {
			return v, err
		}
	}
	for i, on := range r.Enabled {
		if v.Family != spiro.Nodal {
			return v, &spiro.ParamError{Name: "enabled", Reason: "modes apply to the nodal family only"}
		}
		if i < 1 || i > spiro.ModeCount {
			return v, &spiro.ParamError{Name: "enabled", Value: float64(i), Min: 1, Max: spiro.ModeCount}
		}
		v.Modes[i-1].Enabled = on
	}
	return v, nil
}

// Reset restores the session's family defaults.
func (h *Handler) Reset(c fiber.Ctx) error {
	sess, ok := h.store.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	var v spiro.Vector
	err := sess.With(func(s *spiro.State) error {
		_, err := s.Reset()
		v = s.Snapshot()
		return err
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(describe(sess.ID, v))
}

// Frame renders the session as PNG. The tick query parameter (seconds)
// drives the animated family.
func (h *Handler) Frame(c fiber.Ctx) error {
	sess, ok := h.store.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	tick, err := queryFloat(c, "tick", 0)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	opts := raster.DefaultOptions()
	opts.Width = clampSide(fiber.Query[int](c, "width", h.width))
	opts.Height = clampSide(fiber.Query[int](c, "height", h.height))

	var (
		png []byte
		hit bool
	)
	err = sess.With(func(s *spiro.State) error {
		s.Tick(tick)
		key := frameKey{session: sess.ID, vec: s.Snapshot(), width: opts.Width, height: opts.Height}
		if s.Family().Animated() {
			key.tick = tick
		}
		if png, hit = h.frames.Get(key); hit {
			return nil
		}

		buf, err := s.Refresh()
		if err != nil {
			return err
		}
		var out bytes.Buffer
		if err := raster.Render(buf, opts).EncodePNG(&out); err != nil {
			return err
		}
		png = out.Bytes()
		h.frames.Set(key, png)
		return nil
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set("Content-Type", "image/png")
	if hit {
		c.Set("X-Frame-Cache", "hit")
	} else {
		c.Set("X-Frame-Cache", "miss")
	}
	return c.Send(png)
}

// Segments returns the current frame as pixel-space line segments, or a
// field summary for the nodal family.
func (h *Handler) Segments(c fiber.Ctx) error {
	sess, ok := h.store.Get(c.Params("id"))
	if !ok {
		return notFound(c)
	}
	w := clampSide(fiber.Query[int](c, "width", h.width))
	ht := clampSide(fiber.Query[int](c, "height", h.height))

	var resp fiber.Map
	err := sess.With(func(s *spiro.State) error {
		buf, err := s.Refresh()
		if err != nil {
			return err
		}
		if buf.IsField() {
			lo, hi := buf.Field.Range()
			resp = fiber.Map{"family": buf.Family.String(), "field": fieldPayload{
				Rows: buf.Field.Rows, Cols: buf.Field.Cols,
				A: buf.Field.A, B: buf.Field.B,
				Min: lo, Max: hi,
			}}
			return nil
		}
		m := spiro.Viewport(w, ht, buf.FitZoom(w, ht, 0.1))
		segs := buf.Segments(m)
		out := make([]segmentPayload, len(segs))
		for i, sg := range segs {
			out[i] = segmentPayload{A: [2]float64{sg.A.X, sg.A.Y}, B: [2]float64{sg.B.X, sg.B.Y}}
			if sg.Colored {
				out[i].Color = sg.Color.Hex()
			}
		}
		resp = fiber.Map{
			"family":   buf.Family.String(),
			"width":    w,
			"height":   ht,
			"skipped":  buf.Skipped,
			"segments": out,
		}
		return nil
	})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}

func describe(id string, v spiro.Vector) sessionPayload {
	p := sessionPayload{ID: id, Family: v.Family.String(), Params: make(map[string]float64)}
	for _, spec := range v.Family.Params() {
		p.Params[spec.Name], _ = v.Value(spec.Name)
	}
	if v.Family == spiro.Nodal {
		p.Modes = v.Modes[:]
	}
	return p
}

func notFound(c fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "session not found"})
}

// paramError reports a rejected parameter with its declared range.
func paramError(c fiber.Ctx, err error) error {
	var pe *spiro.ParamError
	if errors.As(err, &pe) {
		body := fiber.Map{"error": pe.Error(), "name": pe.Name, "value": pe.Value}
		if pe.Reason == "" {
			body["min"], body["max"] = pe.Min, pe.Max
		}
		return c.Status(http.StatusUnprocessableEntity).JSON(body)
	}
	if errors.Is(err, spiro.ErrInvalidParameter) {
		return c.Status(http.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

func queryFloat(c fiber.Ctx, key string, def float64) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func clampSide(v int) int {
	return max(minFrameSide, min(maxFrameSide, v))
}
