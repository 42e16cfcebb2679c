package config

type WorkerKeyStruct struct {
	PrerenderQueue string
}

var WorkerKey = &WorkerKeyStruct{
	PrerenderQueue: "grid_prerender_queue",
}
