package config

// Merge layers a build file over the user configuration and the default
// variables for goos. Variables resolve build file first, then user
// config, then defaults. Log settings from the build file replace the
// user's field by field. Neither input is modified.
func Merge(user *UserConfig, bf *BuildFile, goos string) *BuildFile {
	if user == nil {
		user = &UserConfig{}
	}

	vars := DefaultVars(goos)
	for k, v := range user.Vars {
		vars[k] = v
	}
	for k, v := range bf.Vars {
		vars[k] = v
	}

	log := user.Log
	if bf.Log.Level != "" {
		log.Level = bf.Log.Level
	}
	if bf.Log.File != "" {
		log.File = bf.Log.File
	}

	steps := make([]Step, len(bf.Steps))
	copy(steps, bf.Steps)

	return &BuildFile{
		Requires: bf.Requires,
		Log:      log,
		Vars:     vars,
		Steps:    steps,
	}
}
