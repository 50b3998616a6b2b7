package ui

import (
	"go.uber.org/zap"

	"github.com/ytget/rickmorty/internal/api"
	"github.com/ytget/rickmorty/internal/i18n"
)

// Deps bundles what every routed view needs.
type Deps struct {
	Fetcher    api.Fetcher
	Translator *i18n.Translator
	Logger     *zap.Logger
	Mobile     *MobileUI
	Navigate   func(path string)

	dispatch dispatcher
}

func (d Deps) withDefaults() Deps {
	if d.Translator == nil {
		d.Translator = i18n.New(i18n.DefaultLanguage)
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Mobile == nil {
		d.Mobile = NewMobileUI()
	}
	if d.Navigate == nil {
		d.Navigate = func(string) {}
	}
	if d.dispatch.main == nil {
		d.dispatch = newDispatcher()
	}
	return d
}
