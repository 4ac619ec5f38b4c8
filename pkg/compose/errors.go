package compose

import "errors"

var (
	// ErrUnknownDefinition indicates the definition id is not registered.
	ErrUnknownDefinition = errors.New("compose: unknown message definition")

	// ErrDefinitionExists indicates a definition id was registered twice.
	ErrDefinitionExists = errors.New("compose: definition already registered")

	// ErrMissingRecipient indicates a definition that expects a recipient
	// was composed without one.
	ErrMissingRecipient = errors.New("compose: definition requires a recipient")

	// ErrNoMasterAddress indicates no recipient could be resolved and no
	// master address is configured to fall back on.
	ErrNoMasterAddress = errors.New("compose: no recipient and no master address configured")

	// ErrEmptyContent indicates neither the rendition nor the definition
	// produced any message content.
	ErrEmptyContent = errors.New("compose: message content is empty")

	// ErrStoreLookup indicates a rendition or template query failed.
	ErrStoreLookup = errors.New("compose: entity store lookup failed")

	// ErrMarkdownRender indicates markdown rendition content could not be
	// converted to HTML.
	ErrMarkdownRender = errors.New("compose: failed to render markdown content")
)
