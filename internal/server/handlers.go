package server

import (
	"encoding/json"
	"fmt"

	"github.com/chromatag/chroma-tools-mcp/internal/bayer"
	"github.com/chromatag/chroma-tools-mcp/internal/chroma"
	"github.com/chromatag/chroma-tools-mcp/internal/lutview"
	"github.com/chromatag/chroma-tools-mcp/internal/segment"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "frame_load", "color_train").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool call failed")
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads frames from cache as needed
//  4. Calls the appropriate bayer/segment/lutview function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Frame Handling
	case "frame_load":
		return s.handleFrameLoad(args)
	case "frame_dimensions":
		return s.handleFrameDimensions(args)

	// Model Building
	case "color_train":
		return s.handleColorTrain(args)
	case "region_grow":
		return s.handleRegionGrow(args)
	case "model_describe":
		return s.handleModelDescribe(args)
	case "chroma_classify":
		return s.handleChromaClassify(args)

	// Lookup Table
	case "lut_populate":
		return s.handleLUTPopulate(args)
	case "lut_clear":
		return s.handleLUTClear(args)
	case "lut_lookup":
		return s.handleLUTLookup(args)
	case "lut_export_png":
		return s.handleLUTExportPNG(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Frame Handling Handlers ===

type frameLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleFrameLoad(args json.RawMessage) (interface{}, error) {
	var a frameLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return bayer.LoadFrameInfo(s.cache, a.Path)
}

type frameDimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleFrameDimensions(args json.RawMessage) (interface{}, error) {
	var a frameLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return frameDimensionsResult{Width: frame.Width, Height: frame.Height}, nil
}

// === Model Building Handlers ===

// tuningArgs carries the optional fitting overrides shared by the training
// tools. Zero values fall back to the production defaults.
type tuningArgs struct {
	IterateStep  float64 `json:"iterate_step"`
	HueTol       float64 `json:"hue_tol"`
	SatTol       float64 `json:"sat_tol"`
	MinSat       float64 `json:"min_sat"`
	MaxSatRatio  float64 `json:"max_sat_ratio"`
	OutlierRatio float64 `json:"outlier_ratio"`
	MaxSamples   int     `json:"max_samples"`
}

// config merges the overrides over DefaultConfig.
func (t tuningArgs) config() segment.Config {
	cfg := segment.DefaultConfig()
	if t.IterateStep != 0 {
		cfg.IterateStep = t.IterateStep
	}
	if t.HueTol != 0 {
		cfg.HueTol = t.HueTol
	}
	if t.SatTol != 0 {
		cfg.SatTol = t.SatTol
	}
	if t.MinSat != 0 {
		cfg.MinSat = t.MinSat
	}
	if t.MaxSatRatio != 0 {
		cfg.MaxSatRatio = t.MaxSatRatio
	}
	if t.OutlierRatio != 0 {
		cfg.OutlierRatio = t.OutlierRatio
	}
	if t.MaxSamples != 0 {
		cfg.MaxSamples = t.MaxSamples
	}
	return cfg
}

type colorTrainArgs struct {
	Path   string       `json:"path"`
	Class  uint8        `json:"class"`
	Region bayer.Region `json:"region"`
	tuningArgs
}

// modelSummary is the tool-facing description of a trained class.
type modelSummary struct {
	Class    uint8         `json:"class"`
	Model    segment.Model `json:"model"`
	Goodness int           `json:"goodness"`
	Samples  int           `json:"samples"`
	Mean     chroma.Point  `json:"mean"`
	Swatch   string        `json:"swatch"`
}

func summarize(class uint8, r *segment.TrainResult) modelSummary {
	return modelSummary{
		Class:    class,
		Model:    r.Model,
		Goodness: r.Goodness,
		Samples:  r.Samples,
		Mean:     r.Mean,
		Swatch:   lutview.Swatch(r.Mean),
	}
}

func (s *Server) handleColorTrain(args json.RawMessage) (interface{}, error) {
	var a colorTrainArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Class < 1 || a.Class > segment.MaxClass {
		return nil, fmt.Errorf("class %d out of range 1..%d", a.Class, segment.MaxClass)
	}
	frame, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	trainer := segment.NewTrainer(a.config(), nil, logDiagnostics{log: s.log})
	result, err := trainer.Train(frame, a.Region)
	if err != nil {
		return nil, err
	}

	s.models[a.Class] = result
	return summarize(a.Class, result), nil
}

type regionGrowArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	tuningArgs
}

type regionGrowResult struct {
	Region bayer.Region `json:"region"`
}

func (s *Server) handleRegionGrow(args json.RawMessage) (interface{}, error) {
	var a regionGrowArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	frame, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.X < 0 || a.X >= frame.Width || a.Y < 0 || a.Y >= frame.Height {
		return nil, fmt.Errorf("seed (%d, %d) outside %dx%d frame", a.X, a.Y, frame.Width, frame.Height)
	}

	grower := segment.NewGrower(a.config(), nil, logDiagnostics{log: s.log})
	region, err := grower.Grow(frame, a.X, a.Y)
	if err != nil {
		return nil, err
	}
	return regionGrowResult{Region: region}, nil
}

type modelDescribeArgs struct {
	Class uint8 `json:"class"`
}

func (s *Server) handleModelDescribe(args json.RawMessage) (interface{}, error) {
	var a modelDescribeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	result, ok := s.models[a.Class]
	if !ok {
		return nil, fmt.Errorf("no model trained for class %d", a.Class)
	}
	return summarize(a.Class, result), nil
}

type chromaClassifyArgs struct {
	Class uint8 `json:"class"`
	U     int   `json:"u"`
	V     int   `json:"v"`
}

type chromaClassifyResult struct {
	Class    uint8 `json:"class"`
	U        int8  `json:"u"`
	V        int8  `json:"v"`
	Contains bool  `json:"contains"`
	LUTClass uint8 `json:"lut_class"`
}

func (s *Server) handleChromaClassify(args json.RawMessage) (interface{}, error) {
	var a chromaClassifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := checkChroma(a.U, a.V); err != nil {
		return nil, err
	}
	result, ok := s.models[a.Class]
	if !ok {
		return nil, fmt.Errorf("no model trained for class %d", a.Class)
	}

	u, v := int8(a.U), int8(a.V)
	return chromaClassifyResult{
		Class:    a.Class,
		U:        u,
		V:        v,
		Contains: result.Model.Contains(chroma.Sample{U: u, V: v}),
		LUTClass: s.lut.Lookup(u, v),
	}, nil
}

// checkChroma validates that both components fit a signed byte.
func checkChroma(u, v int) error {
	if u < -128 || u > 127 || v < -128 || v > 127 {
		return fmt.Errorf("chrominance (%d, %d) outside -128..127", u, v)
	}
	return nil
}

// === Lookup Table Handlers ===

type lutPopulateArgs struct {
	Class    uint8  `json:"class"`
	Strategy string `json:"strategy"`
}

type lutPopulateResult struct {
	Class    uint8  `json:"class"`
	Strategy string `json:"strategy"`
	Tagged   int    `json:"tagged"`
}

func (s *Server) handleLUTPopulate(args json.RawMessage) (interface{}, error) {
	var a lutPopulateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	strategy, err := segment.ParseStrategy(a.Strategy)
	if err != nil {
		return nil, err
	}

	// The polygon strategy needs a trained model; the brightness rule is
	// model-free.
	var model *segment.Model
	if result, ok := s.models[a.Class]; ok {
		model = &result.Model
	} else if strategy == segment.StrategyPolygon {
		return nil, fmt.Errorf("no model trained for class %d", a.Class)
	}

	if err := s.lut.Populate(model, a.Class, strategy); err != nil {
		return nil, err
	}

	tagged := 0
	for _, tag := range s.lut {
		if tag == a.Class {
			tagged++
		}
	}
	return lutPopulateResult{Class: a.Class, Strategy: strategy.String(), Tagged: tagged}, nil
}

type lutClearArgs struct {
	Class uint8 `json:"class"`
}

type lutClearResult struct {
	Class   uint8 `json:"class"`
	Cleared bool  `json:"cleared"`
}

func (s *Server) handleLUTClear(args json.RawMessage) (interface{}, error) {
	var a lutClearArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if a.Class > segment.MaxClass {
		return nil, fmt.Errorf("class %d out of range 0..%d", a.Class, segment.MaxClass)
	}
	s.lut.Clear(a.Class)
	return lutClearResult{Class: a.Class, Cleared: true}, nil
}

type lutLookupArgs struct {
	U int `json:"u"`
	V int `json:"v"`
}

type lutLookupResult struct {
	U     int8  `json:"u"`
	V     int8  `json:"v"`
	Class uint8 `json:"class"`
}

func (s *Server) handleLUTLookup(args json.RawMessage) (interface{}, error) {
	var a lutLookupArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := checkChroma(a.U, a.V); err != nil {
		return nil, err
	}
	u, v := int8(a.U), int8(a.V)
	return lutLookupResult{U: u, V: v, Class: s.lut.Lookup(u, v)}, nil
}

func (s *Server) handleLUTExportPNG(args json.RawMessage) (interface{}, error) {
	return lutview.RenderLUT(s.lut)
}
