// Package environment names the deployment environments the textutils command
// can run in. The logger factory uses it to pick output defaults.
//
//	env := environment.Parse(os.Getenv("TEXTUTILS_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // JSON logs, info level
//	}
package environment
