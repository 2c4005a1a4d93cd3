package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetsReadFailed is returned when targets.json cannot be read.
	ErrTargetsReadFailed = zerr.New("failed to read targets file")

	// ErrTargetsParseFailed is returned when targets.json is not a JSON array of objects.
	ErrTargetsParseFailed = zerr.New("failed to parse targets file")

	// ErrMissingField is returned when a target object lacks a required key.
	ErrMissingField = zerr.New("target is missing a required field")

	// ErrUnknownField is returned when a target object carries a key that is not part of a target.
	ErrUnknownField = zerr.New("target has an unknown field")

	// ErrInvalidField is returned when a target field has the wrong JSON type.
	ErrInvalidField = zerr.New("target field has an invalid value")

	// ErrEmptyField is returned when a required target field is an empty string.
	ErrEmptyField = zerr.New("target field must not be empty")

	// ErrDuplicateBuilder is returned when two targets produce the same builder name.
	ErrDuplicateBuilder = zerr.New("duplicate builder name")

	// ErrBuilderNotFound is returned when a requested builder does not exist.
	ErrBuilderNotFound = zerr.New("builder not found")

	// ErrMovieNotFound is returned when a requested movie is not part of a builder.
	ErrMovieNotFound = zerr.New("movie not found")

	// ErrMissingBaseDir is returned when no targets base directory is configured.
	ErrMissingBaseDir = zerr.New("targets base directory is not configured, set TARGETS_BASEDIR")

	// ErrSettingsReadFailed is returned when the settings file cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrInvalidSetting is returned when a setting has an unusable value.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrUnsupportedFormat is returned when a manifest format is not known.
	ErrUnsupportedFormat = zerr.New("unsupported manifest format, expected 'yaml' or 'json'")

	// ErrManifestEncodeFailed is returned when the manifest cannot be written.
	ErrManifestEncodeFailed = zerr.New("failed to encode manifest")

	// ErrUnknownSignal is returned when a step names a signal the executor cannot send.
	ErrUnknownSignal = zerr.New("unknown interrupt signal")

	// ErrStepFailed is returned when a step command exits unsuccessfully.
	ErrStepFailed = zerr.New("step command failed")

	// ErrStepTimedOut is returned when a step produced no output for longer than its timeout.
	ErrStepTimedOut = zerr.New("step timed out without output")

	// ErrStepMaxTimeExceeded is returned when a step ran longer than its max time.
	ErrStepMaxTimeExceeded = zerr.New("step exceeded its maximum run time")

	// ErrTestStepsFailed is returned when one or more test steps of a local run failed.
	ErrTestStepsFailed = zerr.New("test steps failed")

	// ErrSyncFailed is returned when a local synchronization fails.
	ErrSyncFailed = zerr.New("synchronization failed")

	// ErrSourceNotFound is returned when a target's source directory is missing from the store.
	ErrSourceNotFound = zerr.New("source directory not found")

	// ErrStoreCreateFailed is returned when the sync record store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create sync record store directory")

	// ErrStoreReadFailed is returned when a sync record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read sync record")

	// ErrStoreUnmarshalFailed is returned when a sync record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal sync record")

	// ErrStoreMarshalFailed is returned when a sync record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal sync record")

	// ErrStoreWriteFailed is returned when a sync record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write sync record")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrWalkFailed is returned when walking a directory tree fails.
	ErrWalkFailed = zerr.New("failed to walk directory")
)
