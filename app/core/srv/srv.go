package srv

type Srv struct {
	ai AIDriver
}

type ApplyFunc func(*Srv)

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	s := &Srv{}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

func (s *Srv) AI() AIDriver {
	return s.ai
}
