package ruleset

import (
	"io"
	"strconv"

	"github.com/beevik/etree"

	"github.com/arthur-debert/srclint/pkg/errors"
	"github.com/arthur-debert/srclint/pkg/rule"
)

// PropertySetter lets a rule accept rule-specific configuration properties
// from a ruleset definition. Rules without rule-specific properties do not
// need to implement it.
type PropertySetter interface {
	SetProperty(name, value string) error
}

// commonConfigurable is the setter surface rule.Base provides; every rule
// embedding Base satisfies it.
type commonConfigurable interface {
	SetPriority(int)
	SetEnabled(bool)
	SetDescription(string)
	SetApplyToPaths(string)
	SetDoNotApplyToPaths(string)
	SetApplyToFileNames(string)
	SetDoNotApplyToFileNames(string)
	SetViolationMessage(string)
}

// LoadXML reads a ruleset definition:
//
//	<ruleset>
//	    <rule name="LineLength" priority="2" enabled="true">
//	        <property name="maxLength" value="120"/>
//	        <property name="applyToFileNames" value="*.groovy"/>
//	    </rule>
//	</ruleset>
//
// Rule names resolve against the rule registry. The common properties
// (priority, enabled, description, the four applyTo patterns,
// violationMessage) apply to any rule; everything else goes through the
// rule's PropertySetter, and is an error when the rule has none. The
// returned set is not yet frozen so callers can apply further overrides.
func LoadXML(r io.Reader) (*RuleSet, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.Wrap(err, errors.ErrRuleSetLoad, "cannot parse ruleset XML")
	}

	root := doc.SelectElement("ruleset")
	if root == nil {
		return nil, errors.New(errors.ErrRuleSetLoad, "ruleset XML has no <ruleset> root element")
	}

	rs := New()
	for _, elem := range root.SelectElements("rule") {
		configured, err := loadRuleElement(elem)
		if err != nil {
			return nil, err
		}
		rs.rules = append(rs.rules, configured)
	}
	return rs, nil
}

func loadRuleElement(elem *etree.Element) (rule.Rule, error) {
	name := elem.SelectAttrValue("name", "")
	if name == "" {
		return nil, errors.New(errors.ErrRuleSetLoad, "<rule> element is missing the name attribute")
	}

	r, err := rule.Create(name)
	if err != nil {
		return nil, err
	}

	// Attribute shorthand for the two most common settings.
	if v := elem.SelectAttrValue("priority", ""); v != "" {
		if err := applyProperty(r, "priority", v); err != nil {
			return nil, err
		}
	}
	if v := elem.SelectAttrValue("enabled", ""); v != "" {
		if err := applyProperty(r, "enabled", v); err != nil {
			return nil, err
		}
	}

	for _, prop := range elem.SelectElements("property") {
		propName := prop.SelectAttrValue("name", "")
		propValue := prop.SelectAttrValue("value", "")
		if propName == "" {
			return nil, errors.Newf(errors.ErrRuleSetLoad,
				"rule %s has a <property> element without a name", name)
		}
		if err := applyProperty(r, propName, propValue); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func applyProperty(r rule.Rule, name, value string) error {
	common, ok := r.(commonConfigurable)
	if !ok {
		return errors.Newf(errors.ErrRuleSetLoad, "rule %s does not accept configuration", r.Name())
	}

	switch name {
	case "priority":
		p, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRuleSetLoad,
				"rule %s: priority %q is not an integer", r.Name(), value)
		}
		common.SetPriority(p)
	case "enabled":
		on, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(err, errors.ErrRuleSetLoad,
				"rule %s: enabled %q is not a boolean", r.Name(), value)
		}
		common.SetEnabled(on)
	case "description":
		common.SetDescription(value)
	case "applyToPaths":
		common.SetApplyToPaths(value)
	case "doNotApplyToPaths":
		common.SetDoNotApplyToPaths(value)
	case "applyToFileNames":
		common.SetApplyToFileNames(value)
	case "doNotApplyToFileNames":
		common.SetDoNotApplyToFileNames(value)
	case "violationMessage":
		common.SetViolationMessage(value)
	default:
		setter, ok := r.(PropertySetter)
		if !ok {
			return errors.Newf(errors.ErrRuleSetLoad,
				"rule %s has no property %q", r.Name(), name)
		}
		if err := setter.SetProperty(name, value); err != nil {
			return errors.Wrapf(err, errors.ErrRuleSetLoad,
				"rule %s: cannot set property %q", r.Name(), name)
		}
	}
	return nil
}
