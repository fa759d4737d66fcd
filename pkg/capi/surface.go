// Package capi describes the client API surface of the wrapped native
// library. It is a static catalog of entry points grouped into logical
// sections, used to reconcile binding checklists against the real API.
//
// The catalog is read-only after package init. It never loads or calls
// the native library itself.
package capi

// Section identifies a logical group of the client API.
type Section string

const (
	SectionLifecycle  Section = "lifecycle"
	SectionOptions    Section = "options"
	SectionCommands   Section = "commands"
	SectionProperties Section = "properties"
	SectionEvents     Section = "events"
	SectionHooks      Section = "hooks"
	SectionRendering  Section = "rendering"
	SectionStreaming  Section = "streaming"
)

// sectionOrder is the canonical ordering of sections in all output.
var sectionOrder = []Section{
	SectionLifecycle,
	SectionOptions,
	SectionCommands,
	SectionProperties,
	SectionEvents,
	SectionHooks,
	SectionRendering,
	SectionStreaming,
}

// Sections returns the canonical section order.
func Sections() []Section {
	out := make([]Section, len(sectionOrder))
	copy(out, sectionOrder)
	return out
}

// Title returns a human-readable heading for the section.
func (s Section) Title() string {
	switch s {
	case SectionLifecycle:
		return "Client lifecycle"
	case SectionOptions:
		return "Options"
	case SectionCommands:
		return "Commands"
	case SectionProperties:
		return "Properties"
	case SectionEvents:
		return "Events"
	case SectionHooks:
		return "Hooks"
	case SectionRendering:
		return "Rendering"
	case SectionStreaming:
		return "Streaming"
	}
	return string(s)
}

// Symbol is one entry point of the native client API.
type Symbol struct {
	// Name is the exact exported symbol name, e.g. "mpv_create".
	Name string

	// Section is the logical group the symbol belongs to.
	Section Section

	// Internal marks symbols the native API exposes only for use by the
	// binding layer itself (allocator hooks and the like). A checklist may
	// check them, but they are never part of the public wrapper surface.
	Internal bool
}

// surface lists the libmpv client API in section order. The section split
// follows the upstream header layout: client.h (lifecycle through hooks),
// render.h, and stream_cb.h.
var surface = []Symbol{
	// client.h: handle lifecycle and general utilities
	{Name: "mpv_client_api_version", Section: SectionLifecycle},
	{Name: "mpv_error_string", Section: SectionLifecycle},
	{Name: "mpv_free", Section: SectionLifecycle, Internal: true},
	{Name: "mpv_client_name", Section: SectionLifecycle},
	{Name: "mpv_client_id", Section: SectionLifecycle},
	{Name: "mpv_create", Section: SectionLifecycle},
	{Name: "mpv_initialize", Section: SectionLifecycle},
	{Name: "mpv_destroy", Section: SectionLifecycle},
	{Name: "mpv_terminate_destroy", Section: SectionLifecycle},
	{Name: "mpv_create_client", Section: SectionLifecycle},
	{Name: "mpv_create_weak_client", Section: SectionLifecycle},
	{Name: "mpv_load_config_file", Section: SectionLifecycle},
	{Name: "mpv_get_time_ns", Section: SectionLifecycle},
	{Name: "mpv_get_time_us", Section: SectionLifecycle},
	{Name: "mpv_free_node_contents", Section: SectionLifecycle, Internal: true},
	{Name: "mpv_wait_async_requests", Section: SectionLifecycle},

	// client.h: option handling
	{Name: "mpv_set_option", Section: SectionOptions},
	{Name: "mpv_set_option_string", Section: SectionOptions},

	// client.h: command execution
	{Name: "mpv_command", Section: SectionCommands},
	{Name: "mpv_command_node", Section: SectionCommands},
	{Name: "mpv_command_ret", Section: SectionCommands},
	{Name: "mpv_command_string", Section: SectionCommands},
	{Name: "mpv_command_async", Section: SectionCommands},
	{Name: "mpv_command_node_async", Section: SectionCommands},
	{Name: "mpv_abort_async_command", Section: SectionCommands},

	// client.h: property access
	{Name: "mpv_set_property", Section: SectionProperties},
	{Name: "mpv_set_property_string", Section: SectionProperties},
	{Name: "mpv_set_property_async", Section: SectionProperties},
	{Name: "mpv_del_property", Section: SectionProperties},
	{Name: "mpv_get_property", Section: SectionProperties},
	{Name: "mpv_get_property_string", Section: SectionProperties},
	{Name: "mpv_get_property_osd_string", Section: SectionProperties},
	{Name: "mpv_get_property_async", Section: SectionProperties},
	{Name: "mpv_observe_property", Section: SectionProperties},
	{Name: "mpv_unobserve_property", Section: SectionProperties},

	// client.h: event loop
	{Name: "mpv_event_name", Section: SectionEvents},
	{Name: "mpv_event_to_node", Section: SectionEvents},
	{Name: "mpv_request_event", Section: SectionEvents},
	{Name: "mpv_request_log_messages", Section: SectionEvents},
	{Name: "mpv_wait_event", Section: SectionEvents},
	{Name: "mpv_wakeup", Section: SectionEvents},
	{Name: "mpv_set_wakeup_callback", Section: SectionEvents},
	{Name: "mpv_get_wakeup_pipe", Section: SectionEvents},

	// client.h: hooks
	{Name: "mpv_hook_add", Section: SectionHooks},
	{Name: "mpv_hook_continue", Section: SectionHooks},

	// render.h
	{Name: "mpv_render_context_create", Section: SectionRendering},
	{Name: "mpv_render_context_set_parameter", Section: SectionRendering},
	{Name: "mpv_render_context_get_info", Section: SectionRendering},
	{Name: "mpv_render_context_set_update_callback", Section: SectionRendering},
	{Name: "mpv_render_context_update", Section: SectionRendering},
	{Name: "mpv_render_context_render", Section: SectionRendering},
	{Name: "mpv_render_context_report_swap", Section: SectionRendering},
	{Name: "mpv_render_context_free", Section: SectionRendering},

	// stream_cb.h
	{Name: "mpv_stream_cb_add_ro", Section: SectionStreaming},
}

// byName indexes the surface for lookup.
var byName = func() map[string]Symbol {
	m := make(map[string]Symbol, len(surface))
	for _, sym := range surface {
		m[sym.Name] = sym
	}
	return m
}()

// Surface returns all catalog symbols in canonical order.
func Surface() []Symbol {
	out := make([]Symbol, len(surface))
	copy(out, surface)
	return out
}

// Lookup finds a symbol in the catalog by exact name.
func Lookup(name string) (Symbol, bool) {
	sym, ok := byName[name]
	return sym, ok
}

// BySection returns the catalog symbols belonging to one section,
// in canonical order.
func BySection(section Section) []Symbol {
	var out []Symbol
	for _, sym := range surface {
		if sym.Section == section {
			out = append(out, sym)
		}
	}
	return out
}

// Count returns the number of symbols in the catalog.
func Count() int {
	return len(surface)
}
