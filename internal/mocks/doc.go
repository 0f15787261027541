// Package mocks provides shared test doubles for the service and platform
// interfaces. Each mock records its calls and either returns fixed values or
// delegates to an optional function field:
//
//	text := &mocks.MockTextGenerator{Reply: "OK"}
//	svc, _ := service.NewAPIKeyService(text)
//	...
//	assert.Equal(t, 1, text.CallCount())
package mocks
