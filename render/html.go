package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/abenik/maze-sim/service"
)

// htmlTemplate is a self-contained animation page: frames embedded as JSON,
// play/pause/step/speed controls, keyboard shortcuts.
var htmlTemplate = template.Must(template.New("animation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Maze Simulation - {{.Label}}</title>
    <style>
        body { font-family: monospace; background: #000; color: #0f0; padding: 20px; }
        .maze { font-size: 16px; line-height: 1.2; white-space: pre; border: 2px solid #0f0; padding: 10px; background: #001100; }
        .controls { margin: 20px 0; }
        button { padding: 10px; margin: 5px; font-size: 16px; background: #0f0; color: #000; border: none; cursor: pointer; }
        button:hover { background: #0a0; }
        .frame-info { color: #ff0; margin: 10px 0; font-size: 18px; }
        .summary { margin-top: 20px; color: #fff; background: #111; padding: 15px; white-space: pre; }
        .legend { margin-top: 20px; color: #888; background: #222; padding: 15px; }
        select { padding: 5px; margin: 5px; background: #333; color: #fff; border: 1px solid #0f0; }
    </style>
</head>
<body>
    <h1>Maze Simulation</h1>
    <h2 style="color:#ff0;">Strategy: {{.Label}} ({{.ID}})</h2>
    <div class="frame-info">
        <span>Frame: <span id="frameNum">1</span>/{{.Total}}</span>
        <span style="margin-left: 20px;">Status: <span id="status">Ready</span></span>
    </div>
    <div class="controls">
        <button onclick="play()">Play</button>
        <button onclick="pause()">Pause</button>
        <button onclick="reset()">Reset</button>
        <button onclick="stepForward()">Next</button>
        <button onclick="stepBackward()">Previous</button>
        <span style="margin-left: 20px; color: #fff;">Speed:</span>
        <select id="speed" onchange="setSpeed()">
            <option value="1000">Slow</option>
            <option value="500" selected>Normal</option>
            <option value="200">Fast</option>
            <option value="100">Fastest</option>
        </select>
    </div>
    <div class="maze" id="mazeDisplay"></div>
    <div class="summary">{{.Summary}}</div>
    <div class="legend">
        <p>X = wall | _ = open | o = food</p>
        <p>E = entry | S = exit | N/S/E/W = agent heading</p>
    </div>
    <script>
        const frames = {{.FramesJSON}};
        let currentFrame = 0;
        let isPlaying = false;
        let intervalId = null;
        let speed = 500;

        function updateDisplay() {
            document.getElementById('mazeDisplay').textContent = frames[currentFrame];
            document.getElementById('frameNum').textContent = currentFrame + 1;
            if (currentFrame === frames.length - 1) {
                document.getElementById('status').textContent = 'Finished';
                pause();
            } else {
                document.getElementById('status').textContent = isPlaying ? 'Playing' : 'Paused';
            }
        }

        function play() {
            if (!isPlaying && currentFrame < frames.length - 1) {
                isPlaying = true;
                intervalId = setInterval(() => {
                    if (currentFrame < frames.length - 1) {
                        currentFrame++;
                        updateDisplay();
                    } else {
                        pause();
                    }
                }, speed);
                updateDisplay();
            }
        }

        function pause() {
            isPlaying = false;
            if (intervalId) {
                clearInterval(intervalId);
                intervalId = null;
            }
            updateDisplay();
        }

        function reset() {
            pause();
            currentFrame = 0;
            updateDisplay();
        }

        function stepForward() {
            if (currentFrame < frames.length - 1) { pause(); currentFrame++; updateDisplay(); }
        }

        function stepBackward() {
            if (currentFrame > 0) { pause(); currentFrame--; updateDisplay(); }
        }

        function setSpeed() {
            speed = parseInt(document.getElementById('speed').value);
            if (isPlaying) { pause(); play(); }
        }

        document.addEventListener('keydown', function(event) {
            switch(event.code) {
                case 'Space': event.preventDefault(); if (isPlaying) pause(); else play(); break;
                case 'ArrowRight': stepForward(); break;
                case 'ArrowLeft': stepBackward(); break;
                case 'KeyR': reset(); break;
            }
        });

        updateDisplay();
    </script>
</body>
</html>
`))

type htmlData struct {
	ID         string
	Label      string
	Total      int
	Summary    string
	FramesJSON string
}

// SaveAnimationHTML writes a standalone HTML animation of the run to path,
// creating parent directories as needed.
func SaveAnimationHTML(result *service.Result, path string) error {
	framesJSON, err := json.Marshal(result.Frames)
	if err != nil {
		return fmt.Errorf("encoding frames: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating animation file: %w", err)
	}
	defer file.Close()

	return htmlTemplate.Execute(file, htmlData{
		ID:         result.StrategyID,
		Label:      result.StrategyLabel,
		Total:      len(result.Frames),
		Summary:    result.Summary(),
		FramesJSON: string(framesJSON),
	})
}
