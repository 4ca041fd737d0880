package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nfnt/resize"

	"github.com/tracelab/go-pathtracer/pkg/core"
	"github.com/tracelab/go-pathtracer/pkg/renderer"
	"github.com/tracelab/go-pathtracer/pkg/scene"
)

// Server handles web requests for the path tracer
type Server struct {
	port     int
	logger   core.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a new web server
func NewServer(port int, logger core.Logger) *Server {
	return &Server{
		port:   port,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Start begins serving; blocks until the listener fails
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleRenderSocket)

	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), mux)
}

// RenderRequest describes one progressive render job
type RenderRequest struct {
	Scene          string
	Width          int
	Height         int
	SamplesPerPass int
	Passes         int
	MaxDepth       int
}

// PassUpdate is pushed to the client after each completed pass
type PassUpdate struct {
	Pass            int    `json:"pass"`
	TotalPasses     int    `json:"totalPasses"`
	SamplesPerPixel int    `json:"samplesPerPixel"`   // Accumulated so far
	ImageData       string `json:"imageData"`         // Base64 encoded PNG
	Preview         string `json:"preview,omitempty"` // Base64 encoded downscaled PNG
	ElapsedMs       int64  `json:"elapsedMs"`
	Done            bool   `json:"done"`
}

// ErrorMessage is pushed to the client when a render cannot run
type ErrorMessage struct {
	Error string `json:"error"`
}

// parseRenderRequest reads render parameters from query params, applying
// defaults and caps so a client can't request an unbounded render
func parseRenderRequest(r *http.Request) (RenderRequest, error) {
	query := r.URL.Query()

	req := RenderRequest{
		Scene:          "default",
		Width:          400,
		Height:         0,
		SamplesPerPass: 10,
		Passes:         10,
		MaxDepth:       25,
	}

	if v := query.Get("scene"); v != "" {
		req.Scene = v
	}

	intParams := []struct {
		name string
		dest *int
		max  int
	}{
		{"width", &req.Width, 1920},
		{"height", &req.Height, 1080},
		{"samplesPerPass", &req.SamplesPerPass, 100},
		{"passes", &req.Passes, 100},
		{"maxDepth", &req.MaxDepth, 100},
	}
	for _, p := range intParams {
		v := query.Get(p.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid %s: %q", p.name, v)
		}
		if parsed < 0 || parsed > p.max {
			return req, fmt.Errorf("%s out of range: %d (max %d)", p.name, parsed, p.max)
		}
		*p.dest = parsed
	}

	if req.Height == 0 {
		switch req.Scene {
		case "cornell", "cornell-smoke":
			req.Height = req.Width
		default:
			req.Height = req.Width * 9 / 16
		}
	}

	return req, nil
}

// buildScene constructs the scene named in the request
func buildScene(req RenderRequest) (*scene.Scene, error) {
	switch req.Scene {
	case "default":
		return scene.NewDefaultScene(float64(req.Width) / float64(req.Height)), nil
	case "cornell":
		return scene.NewCornellScene(false), nil
	case "cornell-smoke":
		return scene.NewCornellScene(true), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", req.Scene)
	}
}

// handleRenderSocket runs a progressive render, pushing a frame to the
// client over the websocket after every pass. Each pass renders the full
// image with a fresh seed; frames average all passes so far, so noise
// visibly decreases as passes complete.
func (s *Server) handleRenderSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	req, err := parseRenderRequest(r)
	if err != nil {
		conn.WriteJSON(ErrorMessage{Error: err.Error()})
		return
	}

	selectedScene, err := buildScene(req)
	if err != nil {
		conn.WriteJSON(ErrorMessage{Error: err.Error()})
		return
	}

	// The read pump exists only to detect the client going away
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	s.logger.Printf("render started: scene=%s %dx%d, %d passes x %d spp",
		req.Scene, req.Width, req.Height, req.Passes, req.SamplesPerPass)

	startTime := time.Now()
	accum := make([]core.Vec3, req.Width*req.Height)
	average := make([]core.Vec3, req.Width*req.Height)

	for pass := 1; pass <= req.Passes; pass++ {
		select {
		case <-ctx.Done():
			s.logger.Printf("render canceled after %d passes", pass-1)
			return
		default:
		}

		raytracer := renderer.NewRaytracer(selectedScene, req.Width, req.Height)
		raytracer.SetSeed(int64(pass) * 7919)
		raytracer.SetLogger(s.logger)
		raytracer.SetSamplingConfig(core.SamplingConfig{
			SamplesPerPixel:      req.SamplesPerPass,
			MaxDepth:             req.MaxDepth,
			RussianRouletteDepth: 5,
		})

		pixels, _ := raytracer.RenderLinear()

		for i, p := range pixels {
			accum[i] = accum[i].Add(p)
			average[i] = accum[i].Multiply(1.0 / float64(pass))
		}

		update, err := s.buildPassUpdate(req, pass, average, startTime)
		if err != nil {
			s.logger.Printf("encoding pass %d failed: %v", pass, err)
			return
		}

		if err := conn.WriteJSON(update); err != nil {
			s.logger.Printf("client write failed: %v", err)
			return
		}
	}

	s.logger.Printf("render complete in %v", time.Since(startTime))
}

// buildPassUpdate converts the averaged buffer to PNG frames for the client
func (s *Server) buildPassUpdate(req RenderRequest, pass int, average []core.Vec3, startTime time.Time) (PassUpdate, error) {
	img := renderer.ToImage(average, req.Width, req.Height)

	imageData, err := encodePNGBase64(img)
	if err != nil {
		return PassUpdate{}, err
	}

	update := PassUpdate{
		Pass:            pass,
		TotalPasses:     req.Passes,
		SamplesPerPixel: pass * req.SamplesPerPass,
		ImageData:       imageData,
		ElapsedMs:       time.Since(startTime).Milliseconds(),
		Done:            pass == req.Passes,
	}

	// Downscaled preview for thumbnail strips on larger renders
	if req.Width >= 256 {
		preview := resize.Resize(uint(req.Width/4), 0, img, resize.Lanczos3)
		update.Preview, err = encodePNGBase64(preview)
		if err != nil {
			return PassUpdate{}, err
		}
	}

	return update, nil
}

// encodePNGBase64 encodes an image as a base64 PNG string
func encodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode png: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleIndex serves the render page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<title>Path Tracer</title>
<style>
body { font-family: sans-serif; background: #1e1e1e; color: #ddd; margin: 2em; }
img { image-rendering: pixelated; border: 1px solid #444; }
#status { margin: 1em 0; }
</style>
</head>
<body>
<h1>Path Tracer</h1>
<label>Scene:
<select id="scene">
<option value="default">Default</option>
<option value="cornell">Cornell Box</option>
<option value="cornell-smoke">Cornell Box (smoke)</option>
</select>
</label>
<button id="render">Render</button>
<div id="status"></div>
<img id="frame" width="400">
<script>
const status = document.getElementById('status');
const frame = document.getElementById('frame');
let ws = null;
document.getElementById('render').onclick = () => {
  if (ws) ws.close();
  const sceneName = document.getElementById('scene').value;
  ws = new WebSocket('ws://' + location.host + '/ws?scene=' + sceneName);
  ws.onmessage = (event) => {
    const update = JSON.parse(event.data);
    if (update.error) { status.textContent = 'Error: ' + update.error; return; }
    frame.src = 'data:image/png;base64,' + update.imageData;
    status.textContent = 'Pass ' + update.pass + '/' + update.totalPasses +
      ' (' + update.samplesPerPixel + ' spp, ' + update.elapsedMs + ' ms)' +
      (update.done ? ' - done' : '');
  };
};
</script>
</body>
</html>
`
