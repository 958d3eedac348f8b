package walker

import (
	"strconv"

	"github.com/erraggy/oasmodel/internal/pathutil"
	"github.com/erraggy/oasmodel/model"
	"github.com/erraggy/oasmodel/oaserrors"
	"github.com/erraggy/oasmodel/orderedmap"
)

func (w *Walker) walkDocument(doc *model.Document) error {
	state := walkState{ctx: w.ctx}

	for tpl, item := range doc.Paths.All() {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		s := state
		s.PathTemplate = tpl
		if err := w.walkPathItem(item, pathutil.Join("paths", tpl), s); err != nil || w.stopped {
			return err
		}
	}

	if doc.Components != nil {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		return w.walkComponents(doc.Components, state)
	}
	return nil
}

func (w *Walker) walkPathItem(item *model.PathItem, path string, state walkState) error {
	if item == nil {
		return nil
	}
	if !w.handleRef(item.Ref, path, RefNodePathItem, state) {
		return nil
	}
	if w.onPathItem != nil {
		if !w.proceed(w.onPathItem(state.at(path), item)) {
			return nil
		}
	}

	if err := w.walkParameters(item.Parameters, pathutil.Join(path, "parameters"), state); err != nil || w.stopped {
		return err
	}
	for method, op := range item.Operations().All() {
		s := state
		s.Method = method
		if err := w.walkOperation(op, pathutil.Join(path, method), s); err != nil || w.stopped {
			return err
		}
	}
	return nil
}

func (w *Walker) walkOperation(op *model.Operation, path string, state walkState) error {
	if w.onOperation != nil {
		if !w.proceed(w.onOperation(state.at(path), op)) {
			return nil
		}
	}

	if err := w.walkParameters(op.Parameters, pathutil.Join(path, "parameters"), state); err != nil || w.stopped {
		return err
	}
	if err := w.walkRequestBody(op.RequestBody, pathutil.Join(path, "requestBody"), state); err != nil || w.stopped {
		return err
	}
	for code, r := range op.Responses.All() {
		s := state
		s.StatusCode = code
		if err := w.walkResponse(r, pathutil.Join(pathutil.Join(path, "responses"), code), s); err != nil || w.stopped {
			return err
		}
	}
	return nil
}

func (w *Walker) walkParameters(params []*model.Parameter, path string, state walkState) error {
	for i, p := range params {
		if err := w.walkParameter(p, path+"["+strconv.Itoa(i)+"]", state); err != nil || w.stopped {
			return err
		}
	}
	return nil
}

func (w *Walker) walkParameter(p *model.Parameter, path string, state walkState) error {
	if p == nil {
		return nil
	}
	if !w.handleRef(p.Ref, path, RefNodeParameter, state) {
		return nil
	}
	if w.onParameter != nil {
		if !w.proceed(w.onParameter(state.at(path), p)) {
			return nil
		}
	}
	if p.Ref != "" {
		return nil
	}
	if err := w.walkSchema(p.Schema, pathutil.Join(path, "schema"), state.named("")); err != nil || w.stopped {
		return err
	}
	if err := w.walkExamples(p.Examples, pathutil.Join(path, "examples"), state); err != nil || w.stopped {
		return err
	}
	return w.walkContent(p.Content, pathutil.Join(path, "content"), state)
}

func (w *Walker) walkRequestBody(body *model.RequestBody, path string, state walkState) error {
	if body == nil {
		return nil
	}
	if !w.handleRef(body.Ref, path, RefNodeRequestBody, state) {
		return nil
	}
	if w.onRequestBody != nil {
		if !w.proceed(w.onRequestBody(state.at(path), body)) {
			return nil
		}
	}
	if body.Ref != "" {
		return nil
	}
	return w.walkContent(body.Content, pathutil.Join(path, "content"), state)
}

func (w *Walker) walkResponse(r *model.Response, path string, state walkState) error {
	if r == nil {
		return nil
	}
	if !w.handleRef(r.Ref, path, RefNodeResponse, state) {
		return nil
	}
	if w.onResponse != nil {
		if !w.proceed(w.onResponse(state.at(path), r)) {
			return nil
		}
	}
	if r.Ref != "" {
		return nil
	}

	for name, h := range r.Headers.All() {
		if err := w.walkHeader(h, pathutil.Join(pathutil.Join(path, "headers"), name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	if err := w.walkContent(r.Content, pathutil.Join(path, "content"), state); err != nil || w.stopped {
		return err
	}
	for name, l := range r.Links.All() {
		if l == nil {
			continue
		}
		if !w.handleRef(l.Ref, pathutil.Join(pathutil.Join(path, "links"), name), RefNodeLink, state.named(name)) {
			return nil
		}
	}
	return nil
}

func (w *Walker) walkHeader(h *model.Header, path string, state walkState) error {
	if h == nil {
		return nil
	}
	if !w.handleRef(h.Ref, path, RefNodeHeader, state) {
		return nil
	}
	if h.Ref != "" {
		return nil
	}
	if err := w.walkSchema(h.Schema, pathutil.Join(path, "schema"), state.named("")); err != nil || w.stopped {
		return err
	}
	return w.walkContent(h.Content, pathutil.Join(path, "content"), state)
}

func (w *Walker) walkContent(content *model.Content, path string, state walkState) error {
	for name, mt := range content.All() {
		if mt == nil {
			continue
		}
		mtPath := pathutil.Join(path, name)
		s := state.named(name)
		if w.onMediaType != nil {
			if !w.proceed(w.onMediaType(s.at(mtPath), mt)) {
				if w.stopped {
					return nil
				}
				continue
			}
		}
		if err := w.walkSchema(mt.Schema, pathutil.Join(mtPath, "schema"), state.named("")); err != nil || w.stopped {
			return err
		}
		if err := w.walkExamples(mt.Examples, pathutil.Join(mtPath, "examples"), state); err != nil || w.stopped {
			return err
		}
	}
	return nil
}

func (w *Walker) walkExamples(examples *orderedmap.Map[*model.Example], path string, state walkState) error {
	for name, ex := range examples.All() {
		if ex == nil {
			continue
		}
		if !w.handleRef(ex.Ref, pathutil.Join(path, name), RefNodeExample, state.named(name)) {
			return nil
		}
	}
	return nil
}

func (w *Walker) walkSchema(s model.Schema, path string, state walkState) error {
	if model.IsNil(s) {
		return nil
	}
	state.Depth++
	if w.ancestors[s] {
		w.logger.Debug("skipping schema cycle", "path", path)
		if w.onSchemaSkipped != nil {
			w.onSchemaSkipped(state.at(path), s)
		}
		return nil
	}
	if state.Depth > w.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(state.Depth),
			Path:         path,
		}
	}
	core := s.Core()
	if !w.handleRef(core.Ref, path, RefNodeSchema, state) {
		return nil
	}
	if w.onSchema != nil {
		if !w.proceed(w.onSchema(state.at(path), s)) {
			return nil
		}
	}
	if core.IsRef() {
		return nil
	}

	w.ancestors[s] = true
	defer delete(w.ancestors, s)

	for name, prop := range core.Properties.All() {
		if err := w.walkSchema(prop, pathutil.Join(pathutil.Join(path, "properties"), name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	switch v := s.(type) {
	case *model.ArraySchema:
		return w.walkSchema(v.Items, pathutil.Join(path, "items"), state.named(""))
	case *model.ObjectSchema:
		return w.walkSchema(v.AdditionalProperties, pathutil.Join(path, "additionalProperties"), state.named(""))
	}
	return nil
}

func (w *Walker) walkComponents(c *model.Components, state walkState) error {
	state.IsComponent = true

	for name, s := range c.Schemas.All() {
		if err := w.walkSchema(s, pathutil.Join("components.schemas", name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	for name, r := range c.Responses.All() {
		if err := w.walkResponse(r, pathutil.Join("components.responses", name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	for name, p := range c.Parameters.All() {
		if err := w.walkParameter(p, pathutil.Join("components.parameters", name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	if err := w.walkExamples(c.Examples, "components.examples", state); err != nil || w.stopped {
		return err
	}
	for name, b := range c.RequestBodies.All() {
		if err := w.walkRequestBody(b, pathutil.Join("components.requestBodies", name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	for name, h := range c.Headers.All() {
		if err := w.walkHeader(h, pathutil.Join("components.headers", name), state.named(name)); err != nil || w.stopped {
			return err
		}
	}
	for name, l := range c.Links.All() {
		if l == nil {
			continue
		}
		if !w.handleRef(l.Ref, pathutil.Join("components.links", name), RefNodeLink, state.named(name)) {
			return nil
		}
	}
	return nil
}
