package app

import "github.com/shandysiswandi/gosignup/internal/signup"

func (a *App) initModules() {
	if !a.config.GetBool("modules.signup.enabled") {
		return
	}

	if err := signup.New(signup.Dependency{
		Config:     a.config,
		Instrument: a.ins,
		Validator:  a.validator,
		Router:     a.router,
	}); err != nil {
		fatal("failed to init module signup", err)
	}
}
