package mgmt

import (
	"net/url"
	"strconv"
)

// PageFilter selects a page of a paginated list. A nil *PageFilter requests
// the server default. The zero value is ready to use.
type PageFilter struct {
	params url.Values
}

// NewPageFilter returns an empty PageFilter.
func NewPageFilter() *PageFilter {
	return &PageFilter{params: url.Values{}}
}

// WithPage sets the zero-based page index and page size.
func (f *PageFilter) WithPage(page, perPage int) *PageFilter {
	f.set("page", strconv.Itoa(page))
	f.set("per_page", strconv.Itoa(perPage))
	return f
}

func (f *PageFilter) set(key, value string) {
	if f.params == nil {
		f.params = url.Values{}
	}
	f.params.Set(key, value)
}

func (f *PageFilter) values() url.Values {
	if f == nil {
		return nil
	}
	return f.params
}

// ActionsFilter narrows the action list. Unset fields are not sent.
type ActionsFilter struct {
	PageFilter
}

// NewActionsFilter returns an ActionsFilter matching every action.
func NewActionsFilter() *ActionsFilter {
	return &ActionsFilter{PageFilter: PageFilter{params: url.Values{}}}
}

// WithTriggerID only returns actions supporting the given trigger.
func (f *ActionsFilter) WithTriggerID(triggerID string) *ActionsFilter {
	f.set("triggerId", triggerID)
	return f
}

// WithActionName only returns the action with this exact name.
func (f *ActionsFilter) WithActionName(name string) *ActionsFilter {
	f.set("actionName", name)
	return f
}

// WithDeployed filters on whether the action has a deployed version.
func (f *ActionsFilter) WithDeployed(deployed bool) *ActionsFilter {
	f.set("deployed", strconv.FormatBool(deployed))
	return f
}

// WithInstalled filters on whether the action was installed from the
// marketplace.
func (f *ActionsFilter) WithInstalled(installed bool) *ActionsFilter {
	f.set("installed", strconv.FormatBool(installed))
	return f
}

// WithPage sets the zero-based page index and page size.
func (f *ActionsFilter) WithPage(page, perPage int) *ActionsFilter {
	f.PageFilter.WithPage(page, perPage)
	return f
}

func (f *ActionsFilter) values() url.Values {
	if f == nil {
		return nil
	}
	return f.params
}
