package components

import "sceneforge/internal/engine"

// ModelRenderer places an instance of a model asset on its GameObject.
type ModelRenderer struct {
	engine.BaseComponent
	ModelID    int64
	InstanceID int64 // persistent id, 0 until the instance is first saved
}

func NewModelRenderer(modelID int64) *ModelRenderer {
	return &ModelRenderer{ModelID: modelID}
}
