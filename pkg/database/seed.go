package database

import (
	"exam_coach_backend/internal/config"
	"exam_coach_backend/internal/model"
	"log"

	"gorm.io/gorm"
)

// Seed inserts the configured exams and a starter question bank. Exams are
// created individually when missing; questions are only loaded for an exam
// whose bank is empty, so curated banks are never clobbered on restart.
func Seed(db *gorm.DB, policies []config.ExamPolicy) error {
	for _, p := range policies {
		var count int64
		if err := db.Model(&model.Exam{}).Where("code = ?", p.Code).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		exam := model.Exam{
			Code:              p.Code,
			Name:              p.Name,
			OutlineVersion:    p.OutlineVersion,
			TotalQuestions:    p.TotalQuestions,
			TimeLimitMinutes:  p.TimeLimitMinutes,
			PassingPercentage: p.PassingPercentage,
		}
		if err := db.Create(&exam).Error; err != nil {
			return err
		}
	}

	banks := map[string][]model.Question{
		"SIE":       sieQuestions(),
		"SERIES_7":  series7Questions(),
		"SERIES_57": series57Questions(),
		"SERIES_65": series65Questions(),
	}
	for code, questions := range banks {
		var count int64
		if err := db.Model(&model.Question{}).Where("exam_code = ? AND active = ?", code, true).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&questions).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d questions for %s", len(questions), code)
	}

	return nil
}

func seedQuestion(examCode, text, a, b, c, d string, correct model.ChoiceLetter, explanation, topic, difficulty string) model.Question {
	return model.Question{
		ExamCode: examCode,
		Text:     text,
		Choices: []model.Choice{
			{Letter: model.ChoiceA, Text: a},
			{Letter: model.ChoiceB, Text: b},
			{Letter: model.ChoiceC, Text: c},
			{Letter: model.ChoiceD, Text: d},
		},
		CorrectLetter: correct,
		Explanation:   explanation,
		Topic:         topic,
		Difficulty:    difficulty,
		Source:        "seed",
		Active:        true,
	}
}

func sieQuestions() []model.Question {
	const (
		regulators = "Regulatory Entities"
		markets    = "Securities Markets"
		accounts   = "Customer Accounts"
		equity     = "Equity Securities"
		debt       = "Debt Securities"
	)
	return []model.Question{
		seedQuestion("SIE", "Which of the following is a self-regulatory organization (SRO)?", "SEC", "FINRA", "Congress", "State securities regulator", model.ChoiceB, "FINRA is an SRO that regulates broker-dealers.", regulators, "easy"),
		seedQuestion("SIE", "The SEC was established by which act?", "Securities Act of 1933", "Securities Exchange Act of 1934", "Investment Company Act of 1940", "Investment Advisers Act of 1940", model.ChoiceB, "The Exchange Act of 1934 created the SEC.", regulators, "medium"),
		seedQuestion("SIE", "A primary market transaction involves:", "Trading between investors", "Issuer selling new securities to investors", "Market maker inventory", "Secondary offering only", model.ChoiceB, "Primary market is when the issuer sells new securities.", markets, "easy"),
		seedQuestion("SIE", "Which account requires a signed customer agreement?", "Cash account", "Margin account", "Both require it", "Neither", model.ChoiceC, "Both cash and margin accounts require a signed agreement.", accounts, "easy"),
		seedQuestion("SIE", "Common stock represents:", "Debt of the issuer", "Ownership in the company", "A fixed dividend", "Priority in liquidation", model.ChoiceB, "Common stock represents equity ownership.", equity, "easy"),
		seedQuestion("SIE", "A bond's yield to maturity assumes:", "All coupons are spent", "Bond is held to maturity", "Interest rates are unchanged", "Default does not occur", model.ChoiceB, "YTM assumes the bond is held until maturity.", debt, "medium"),
		seedQuestion("SIE", "FINRA membership is required for:", "Investment advisers only", "Broker-dealers engaged in securities business", "Hedge funds", "Banks only", model.ChoiceB, "Broker-dealers must be FINRA members.", regulators, "easy"),
		seedQuestion("SIE", "Blue sky laws refer to:", "Federal registration", "State securities registration", "SEC rules", "FINRA rules", model.ChoiceB, "State securities laws are called blue sky laws.", regulators, "medium"),
		seedQuestion("SIE", "In a margin account, the customer must maintain:", "No minimum", "Initial margin only", "Minimum maintenance margin", "Only Reg T margin", model.ChoiceC, "Maintenance margin must be maintained after initial margin.", accounts, "medium"),
		seedQuestion("SIE", "Preferred stock typically has:", "Voting rights equal to common", "No voting rights", "Priority over common in dividends", "Both B and C", model.ChoiceD, "Preferred usually has dividend priority and often no voting rights.", equity, "easy"),
		seedQuestion("SIE", "Municipal bonds are issued by:", "The federal government", "State and local governments", "Corporations", "Banks", model.ChoiceB, "Municipals are issued by state and local governments.", debt, "easy"),
		seedQuestion("SIE", "The MSRB regulates:", "Mutual funds", "Municipal securities dealers", "Options exchanges", "Futures", model.ChoiceB, "MSRB regulates municipal securities dealers.", regulators, "medium"),
		seedQuestion("SIE", "A customer's signature on a new account form is required within:", "30 days", "60 days", "No specific period", "Before first trade", model.ChoiceA, "NASD/FINRA rules require signature within 30 days.", accounts, "hard"),
		seedQuestion("SIE", "Which is true of the OTC market?", "Only listed securities", "Dealer market", "Auction market only", "No NASDAQ", model.ChoiceB, "OTC is a dealer market.", markets, "easy"),
		seedQuestion("SIE", "Treasury bonds have:", "Credit risk only", "Interest rate risk", "No risk", "Only inflation risk", model.ChoiceB, "Treasuries have interest rate risk.", debt, "easy"),
		seedQuestion("SIE", "An accredited investor includes someone with income over:", "$100,000", "$200,000 (or $300,000 joint)", "$500,000", "$1,000,000", model.ChoiceB, "Accredited: $200K individual or $300K joint income.", accounts, "medium"),
		seedQuestion("SIE", "The Securities Act of 1933 primarily governs:", "Secondary market trading", "Registration of new offerings", "Broker conduct", "Margin rules", model.ChoiceB, "1933 Act governs registration of new securities.", regulators, "easy"),
		seedQuestion("SIE", "A prospectus must be delivered:", "Only for mutual funds", "In connection with a new offering", "Only for IPOs", "Never for bonds", model.ChoiceB, "Prospectus is required in connection with new offerings.", markets, "medium"),
		seedQuestion("SIE", "Equity securities include:", "Corporate bonds", "Treasury notes", "Common and preferred stock", "Municipal bonds", model.ChoiceC, "Equity = common and preferred stock.", equity, "easy"),
		seedQuestion("SIE", "SIPC protects customers against:", "Market loss", "Broker-dealer insolvency", "Fraud", "Recommendation loss", model.ChoiceB, "SIPC protects against broker insolvency, not market loss.", accounts, "medium"),
	}
}

func series7Questions() []model.Question {
	const (
		options   = "Options"
		munis     = "Municipal Securities"
		packaged  = "Packaged Products"
		recommend = "Customer Recommendations"
		trading   = "Trading"
	)
	return []model.Question{
		seedQuestion("SERIES_7", "A long call option gives the holder the:", "Obligation to buy", "Right to buy", "Obligation to sell", "Right to sell", model.ChoiceB, "Long call = right to buy the underlying.", options, "easy"),
		seedQuestion("SERIES_7", "A customer sells a naked put. Maximum gain is:", "Unlimited", "Strike price minus premium", "Premium received", "Strike price plus premium", model.ChoiceC, "Max gain on short put = premium received.", options, "medium"),
		seedQuestion("SERIES_7", "General obligation bonds are backed by:", "Revenue of a project", "Full faith and credit of the issuer", "Federal guarantee", "Private insurance", model.ChoiceB, "GO bonds are backed by taxing power.", munis, "easy"),
		seedQuestion("SERIES_7", "A unit investment trust:", "Has an active manager", "Has a fixed portfolio", "Trades at NAV only", "Is always a closed-end fund", model.ChoiceB, "UIT has a fixed, unmanaged portfolio.", packaged, "medium"),
		seedQuestion("SERIES_7", "Suitability requires the rep to:", "Guarantee returns", "Recommend only what is suitable for the customer", "Avoid all risk", "Use only internal research", model.ChoiceB, "Suitability = recommend suitable investments for the customer.", recommend, "easy"),
		seedQuestion("SERIES_7", "Best execution means:", "Lowest commission only", "Best overall terms for the customer", "Fastest execution only", "Only price", model.ChoiceB, "Best execution = best overall terms.", trading, "easy"),
		seedQuestion("SERIES_7", "When may a rep share in a customer's account?", "Never", "With written authorization and firm approval", "Only in margin accounts", "Only for institutional accounts", model.ChoiceB, "Sharing requires written authorization and firm approval.", recommend, "medium"),
		seedQuestion("SERIES_7", "Revenue bonds are backed by:", "Taxing power", "Project revenue", "Federal guarantee", "State guarantee", model.ChoiceB, "Revenue bonds are backed by project revenue.", munis, "easy"),
		seedQuestion("SERIES_7", "A spread is the difference between:", "Bid and ask", "High and low", "Open and close", "Volume and open interest", model.ChoiceA, "Spread = bid-ask difference.", trading, "easy"),
		seedQuestion("SERIES_7", "An open-end fund:", "Trades on an exchange", "Redeems shares at NAV", "Has a fixed number of shares", "Is a UIT", model.ChoiceB, "Open-end funds redeem at NAV.", packaged, "easy"),
		seedQuestion("SERIES_7", "Writing a covered call means the writer:", "Has no position in the stock", "Owns the underlying stock", "Is short the stock", "Has a long call", model.ChoiceB, "Covered call = short call + long stock.", options, "medium"),
		seedQuestion("SERIES_7", "Breakpoint sales involve:", "Selling at a loss", "Volume discounts on mutual fund purchases", "Bond yields", "Option strike prices", model.ChoiceB, "Breakpoints are volume discounts on mutual funds.", packaged, "medium"),
		seedQuestion("SERIES_7", "Churning refers to:", "Excessive trading for commissions", "Selling at a loss", "Unsuitable recommendations", "Front-running", model.ChoiceA, "Churning = excessive trading for commissions.", recommend, "easy"),
		seedQuestion("SERIES_7", "A limit order:", "Executes at market price", "Executes at or better than specified price", "Is good for the day only", "Cannot be cancelled", model.ChoiceB, "Limit order = at or better than limit price.", trading, "easy"),
		seedQuestion("SERIES_7", "ADR represents:", "A domestic bond", "Receipt for foreign shares", "A mutual fund share", "A Treasury", model.ChoiceB, "ADR = American Depositary Receipt for foreign shares.", recommend, "easy"),
		seedQuestion("SERIES_7", "Delta measures an option's sensitivity to:", "Time decay", "Underlying price change", "Volatility only", "Interest rates only", model.ChoiceB, "Delta = sensitivity to underlying price.", options, "medium"),
		seedQuestion("SERIES_7", "A prospectus is required to be delivered:", "Only at sale", "Before or at sale", "Within 30 days after", "Only for IPOs", model.ChoiceB, "Prospectus must be delivered before or at sale.", packaged, "easy"),
		seedQuestion("SERIES_7", "Markup on a principal transaction must be:", "Disclosed only if asked", "Reasonable", "Zero", "Only on bonds", model.ChoiceB, "Markups must be reasonable.", trading, "medium"),
		seedQuestion("SERIES_7", "A customer wants growth and can accept risk. Best recommendation is:", "Money market fund", "Growth equity fund", "Treasury bills", "CD", model.ChoiceB, "Growth with risk tolerance suggests equity.", recommend, "easy"),
		seedQuestion("SERIES_7", "Settlement for regular way equity is:", "T+0", "T+1", "T+2", "T+3", model.ChoiceC, "Regular way equity settles T+2.", trading, "medium"),
	}
}

func series57Questions() []model.Question {
	const (
		makers     = "Market Making"
		tradeRules = "Trading Rules"
		orders     = "Order Handling"
		regulation = "Regulation"
		structure  = "Market Structure"
	)
	return []model.Question{
		seedQuestion("SERIES_57", "A market maker quotes 10.00 - 10.05. The spread is:", "5 cents", "10 cents", "0", "10.05", model.ChoiceA, "Spread = ask - bid = 10.05 - 10.00 = 5 cents.", makers, "easy"),
		seedQuestion("SERIES_57", "Locked market occurs when:", "Bid equals ask", "No spread", "Both A and B", "Bid exceeds ask", model.ChoiceC, "Locked market = bid = ask (no spread).", makers, "medium"),
		seedQuestion("SERIES_57", "Which order has the highest priority?", "Price", "Time", "Size", "Display", model.ChoiceA, "Price priority is first, then time.", orders, "easy"),
		seedQuestion("SERIES_57", "Trade-through rules are designed to:", "Speed up execution", "Protect displayed quotes", "Reduce spreads", "Allow dark pools only", model.ChoiceB, "Trade-through rules protect displayed liquidity.", regulation, "medium"),
		seedQuestion("SERIES_57", "A market order guarantees:", "Price", "Execution", "Size", "Time", model.ChoiceB, "Market order guarantees execution, not price.", orders, "easy"),
		seedQuestion("SERIES_57", "Reg NMS applies to:", "Options only", "Equity securities", "Bonds only", "Futures", model.ChoiceB, "Reg NMS applies to listed equity securities.", regulation, "easy"),
		seedQuestion("SERIES_57", "Odd lot is fewer than:", "100 shares", "10 shares", "1 round lot", "500 shares", model.ChoiceA, "Odd lot = less than 100 shares.", tradeRules, "easy"),
		seedQuestion("SERIES_57", "Best execution applies to:", "Only retail", "Only institutional", "All customer orders", "Only market orders", model.ChoiceC, "Best execution applies to all customer orders.", orders, "easy"),
		seedQuestion("SERIES_57", "A dealer holds inventory in:", "Agency market", "Principal capacity", "Auction only", "Cross only", model.ChoiceB, "Dealer holds inventory as principal.", makers, "easy"),
		seedQuestion("SERIES_57", "Displayed liquidity is protected under:", "Reg ATS", "Reg NMS order protection", "Reg SHO only", "No rule", model.ChoiceB, "Reg NMS order protection rule protects displayed quotes.", regulation, "medium"),
		seedQuestion("SERIES_57", "Short selling requires:", "No locate", "Locate for borrow", "Only for market makers", "Only for institutional", model.ChoiceB, "Short sales require a locate for borrow.", tradeRules, "medium"),
		seedQuestion("SERIES_57", "Tick size for stocks under $1 may be:", "0.01", "0.001", "0.0001", "Same as over $1", model.ChoiceB, "Sub-penny pricing allowed for stocks under $1 in some cases.", structure, "hard"),
		seedQuestion("SERIES_57", "Market structure includes:", "Exchanges and ATSs", "Only NYSE", "Only NASDAQ", "Only dark pools", model.ChoiceA, "Market structure includes exchanges and ATSs.", structure, "easy"),
		seedQuestion("SERIES_57", "An ATS is:", "An exchange", "An alternative trading system", "A clearing house", "A regulator", model.ChoiceB, "ATS = alternative trading system.", structure, "easy"),
		seedQuestion("SERIES_57", "Price improvement means execution:", "At a worse price", "Between bid and ask", "At the quote", "Only for retail", model.ChoiceB, "Price improvement = better than quoted price.", orders, "easy"),
		seedQuestion("SERIES_57", "Two-sided quote means:", "Bid only", "Ask only", "Both bid and ask", "No quote", model.ChoiceC, "Two-sided = both bid and ask displayed.", makers, "easy"),
		seedQuestion("SERIES_57", "Order handling rules require:", "Display of limit orders", "No display", "Display only for retail", "Display only on exchange", model.ChoiceA, "Limit orders must be displayed per rules.", regulation, "medium"),
		seedQuestion("SERIES_57", "Consolidated tape shows:", "Trades from all markets", "Only NYSE", "Only NASDAQ", "Only one exchange", model.ChoiceA, "Consolidated tape = all markets.", structure, "easy"),
		seedQuestion("SERIES_57", "A block trade is typically:", "Under 10,000 shares", "Over 10,000 shares", "Exactly 100 shares", "Odd lot", model.ChoiceB, "Block = large trade, often 10,000+ shares.", tradeRules, "easy"),
		seedQuestion("SERIES_57", "Market maker capital is used for:", "Only agency", "Inventory and risk", "Only clearing", "Only routing", model.ChoiceB, "Market makers use capital for inventory and risk.", makers, "medium"),
	}
}

func series65Questions() []model.Question {
	const (
		laws     = "Regulations and Laws"
		ethics   = "Ethics and Fiduciary Duty"
		vehicles = "Investment Vehicles"
		clients  = "Client Strategies"
		economy  = "Economic Factors"
	)
	return []model.Question{
		seedQuestion("SERIES_65", "The Investment Advisers Act of 1940 is primarily enforced by:", "FINRA", "SEC", "State regulators only", "NASAA", model.ChoiceB, "The SEC enforces the federal Investment Advisers Act of 1940.", laws, "easy"),
		seedQuestion("SERIES_65", "An investment adviser is defined as someone who:", "Sells securities for commission", "Gives advice about securities for compensation", "Only manages mutual funds", "Only advises institutions", model.ChoiceB, "IA = gives advice about securities for compensation.", laws, "easy"),
		seedQuestion("SERIES_65", "Which is typically exempt from federal IA registration?", "Adviser with $110M AUM", "Adviser to investment companies only", "Adviser with only insurance products", "Adviser with only one client", model.ChoiceC, "Advisers solely to insurance products may be exempt.", laws, "medium"),
		seedQuestion("SERIES_65", "State-registered investment advisers are regulated by:", "SEC only", "State securities authorities", "FINRA", "MSRB", model.ChoiceB, "State-registered IAs are regulated by state securities authorities.", laws, "easy"),
		seedQuestion("SERIES_65", "The brochure rule requires delivery of:", "A summary of the advisory agreement", "Form ADV Part 2 (or equivalent)", "Only Part 1", "Only at client request", model.ChoiceB, "Part 2 (brochure) must be delivered to clients.", laws, "medium"),
		seedQuestion("SERIES_65", "Custody under the IA rule generally means:", "Having authority to withdraw client funds", "Only holding client securities", "Having power of attorney", "Only for pooled vehicles", model.ChoiceA, "Custody = authority to withdraw or possess client funds/securities.", laws, "medium"),
		seedQuestion("SERIES_65", "A federal covered adviser is one that:", "Is registered only with the SEC", "Is exempt from state registration", "Is registered in all states", "Is only state-registered", model.ChoiceB, "Federal covered = registered with SEC, generally not state.", laws, "medium"),
		seedQuestion("SERIES_65", "The de minimis exemption allows state registration when:", "AUM exceeds $110M", "Fewer than 6 clients in the state", "Only 5 or fewer clients total", "No place of business in state", model.ChoiceD, "De minimis: no place of business in state, limited clients there.", laws, "hard"),
		seedQuestion("SERIES_65", "An IAR is:", "Investment Adviser Representative", "Independent Audit Report", "Internal Assessment Review", "Investment Allocation Ratio", model.ChoiceA, "IAR = Investment Adviser Representative.", laws, "easy"),
		seedQuestion("SERIES_65", "Form ADV is filed with:", "FINRA", "SEC and/or state authorities", "NASAA only", "MSRB", model.ChoiceB, "Form ADV is filed with SEC and/or state regulators.", laws, "easy"),
		seedQuestion("SERIES_65", "The antifraud provisions of the IA Act apply to:", "Only SEC-registered advisers", "All investment advisers", "Only those with custody", "Only those with AUM over $100M", model.ChoiceB, "Antifraud provisions apply to all IAs regardless of registration.", laws, "medium"),
		seedQuestion("SERIES_65", "A wrap fee program typically includes:", "Only trading commissions", "Advisory fee and execution in one fee", "Only custody fees", "Only performance fees", model.ChoiceB, "Wrap fee = bundled advisory and execution.", laws, "medium"),
		seedQuestion("SERIES_65", "Performance-based fees are generally permitted for:", "Only mutual funds", "Qualified clients under SEC rules", "Any client", "Only institutional", model.ChoiceB, "Performance fees allowed for qualified clients per SEC rules.", laws, "medium"),
		seedQuestion("SERIES_65", "The Investment Company Act of 1940 governs:", "All investment advisers", "Mutual funds and similar companies", "Broker-dealers", "Hedge funds only", model.ChoiceB, "1940 Act governs investment companies (e.g. mutual funds).", laws, "easy"),
		seedQuestion("SERIES_65", "NASAA is:", "A federal agency", "An association of state securities regulators", "A self-regulatory organization", "A branch of the SEC", model.ChoiceB, "NASAA = North American Securities Administrators Association.", laws, "easy"),
		seedQuestion("SERIES_65", "Registration as an IAR typically requires:", "Only firm registration", "Passing Series 65 or 66 (or equivalent)", "Only state approval", "Only SEC approval", model.ChoiceB, "IARs generally must pass Series 65/66 or equivalent.", laws, "easy"),
		seedQuestion("SERIES_65", "An adviser with a principal place of business in a state must register in:", "Only the SEC", "That state", "All states where clients reside", "No state", model.ChoiceB, "Adviser registers in state where principal place of business is.", laws, "medium"),
		seedQuestion("SERIES_65", "The Uniform Securities Act is a:", "Federal law", "Model state law", "FINRA rule", "SEC regulation", model.ChoiceB, "USA is a model state law adopted by many states.", laws, "medium"),
		seedQuestion("SERIES_65", "Fraud under securities law includes:", "Only misrepresentation", "Misrepresentation, omission of material fact, and manipulative acts", "Only insider trading", "Only churning", model.ChoiceB, "Fraud includes misrepresentation, material omissions, manipulation.", laws, "medium"),
		seedQuestion("SERIES_65", "An IA must maintain books and records for:", "1 year", "3 years", "5 years (some longer)", "10 years", model.ChoiceC, "IAs must maintain books and records for at least 5 years.", laws, "medium"),
		seedQuestion("SERIES_65", "A fiduciary duty means the adviser must act in:", "The adviser's best interest", "The client's best interest", "The firm's best interest", "The custodian's best interest", model.ChoiceB, "Fiduciary duty = act in the client's best interest.", ethics, "easy"),
		seedQuestion("SERIES_65", "Disclosure of conflicts of interest should be:", "Only if asked", "In writing, before or at the time of the advice", "Only verbal", "Only in the annual report", model.ChoiceB, "Material conflicts must be disclosed in writing in advance.", ethics, "easy"),
		seedQuestion("SERIES_65", "Suitability for an IA means:", "Recommendations must be suitable for the client", "Only execution must be suitable", "Only for wrap accounts", "Only for institutional clients", model.ChoiceA, "IA recommendations must be suitable for the client.", ethics, "easy"),
		seedQuestion("SERIES_65", "Churning in an advisory account refers to:", "Rebalancing", "Excessive trading to generate fees", "Selling losers", "Diversification", model.ChoiceB, "Churning = excessive trading to generate fees.", ethics, "easy"),
		seedQuestion("SERIES_65", "An IA may receive third-party compensation if:", "Never", "Disclosed and client consents", "Only from the custodian", "Only for referrals", model.ChoiceB, "Third-party compensation must be disclosed and client may consent.", ethics, "medium"),
		seedQuestion("SERIES_65", "Best execution for an IA means:", "Lowest commission only", "Best overall terms for the client", "Fastest execution only", "Only when directed", model.ChoiceB, "Best execution = best overall terms for the client.", ethics, "easy"),
		seedQuestion("SERIES_65", "Soft dollar arrangements involve:", "Cash rebates to the client", "Using client commission to obtain research/services", "Hard currency only", "No disclosure required", model.ChoiceB, "Soft dollars = client commissions used for research/services.", ethics, "medium"),
		seedQuestion("SERIES_65", "A code of ethics under the IA rule typically requires:", "Only compliance manual", "Reporting of personal trading and adherence to standards", "Only annual review", "Only for large firms", model.ChoiceB, "Code of ethics includes personal trading and standards.", ethics, "medium"),
		seedQuestion("SERIES_65", "Front-running is:", "Trading ahead of client orders to benefit the firm", "Selling before the client", "Only for market makers", "Permitted with disclosure", model.ChoiceA, "Front-running = trading ahead of client to benefit from the move.", ethics, "medium"),
		seedQuestion("SERIES_65", "Material non-public information:", "May be used with disclosure", "Must not be used for trading", "May be shared with other clients", "Is only insider trading if disclosed", model.ChoiceB, "Use of material non-public information is illegal.", ethics, "easy"),
		seedQuestion("SERIES_65", "An IA's fiduciary duty applies:", "Only to discretionary accounts", "To all advisory relationships", "Only when charging a fee", "Only to retail clients", model.ChoiceB, "Fiduciary duty applies to all advisory relationships.", ethics, "easy"),
		seedQuestion("SERIES_65", "Disclosure of fees must be:", "Only in the agreement", "Clear and in writing, before engagement", "Only annually", "Only if over 1%", model.ChoiceB, "Fees must be clearly disclosed in writing before engagement.", ethics, "easy"),
		seedQuestion("SERIES_65", "Recommending a security in which the IA has an interest requires:", "No disclosure", "Disclosure of the conflict", "Only verbal disclosure", "Only if asked", model.ChoiceB, "Conflict of interest must be disclosed.", ethics, "easy"),
		seedQuestion("SERIES_65", "Custody rule requires, among other things:", "Annual surprise examination or audit", "No specific requirement", "Only quarterly statements", "Only for mutual funds", model.ChoiceA, "Custody rule requires surprise exam or audit for qualified custody.", ethics, "medium"),
		seedQuestion("SERIES_65", "Suitability considerations include:", "Only risk tolerance", "Client's financial situation, investment objectives, risk tolerance", "Only time horizon", "Only age", model.ChoiceB, "Suitability considers situation, objectives, risk, and more.", ethics, "easy"),
		seedQuestion("SERIES_65", "An IA that recommends only proprietary products:", "Has no conflict", "Has a conflict that must be disclosed", "Need not disclose", "Only if fee-based", model.ChoiceB, "Proprietary product recommendations create a conflict to disclose.", ethics, "medium"),
		seedQuestion("SERIES_65", "Rebalancing a portfolio:", "Is always churning", "Can be appropriate to maintain strategy", "Requires no disclosure", "Is prohibited", model.ChoiceB, "Rebalancing can be appropriate to maintain allocation.", ethics, "easy"),
		seedQuestion("SERIES_65", "Bonds are generally:", "Equity securities", "Debt instruments", "Derivatives", "Commodities", model.ChoiceB, "Bonds are debt instruments.", vehicles, "easy"),
		seedQuestion("SERIES_65", "When interest rates rise, existing bond prices typically:", "Rise", "Fall", "Stay the same", "Double", model.ChoiceB, "Bond prices and interest rates move inversely.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Duration measures a bond's sensitivity to:", "Credit risk", "Interest rate changes", "Inflation only", "Liquidity", model.ChoiceB, "Duration measures interest rate sensitivity.", vehicles, "medium"),
		seedQuestion("SERIES_65", "A mutual fund that invests in stocks and bonds is typically:", "A money market fund", "A balanced or hybrid fund", "An index fund only", "A sector fund", model.ChoiceB, "Balanced/hybrid funds hold both stocks and bonds.", vehicles, "easy"),
		seedQuestion("SERIES_65", "An ETF often:", "Trades at NAV only at end of day", "Trades on an exchange like a stock", "Has no ticker", "Cannot be sold short", model.ChoiceB, "ETFs trade on exchanges throughout the day.", vehicles, "easy"),
		seedQuestion("SERIES_65", "A variable annuity:", "Has a fixed payout", "Offers sub-accounts with market risk", "Is only an insurance product", "Has no tax deferral", model.ChoiceB, "Variable annuity has sub-accounts with investment risk.", vehicles, "medium"),
		seedQuestion("SERIES_65", "Municipal bond interest is often:", "Taxable federally", "Exempt from federal income tax", "Taxable only in some states", "Never tax-exempt", model.ChoiceB, "Municipal interest is often exempt from federal tax.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Common stock represents:", "Debt", "Ownership in the company", "A fixed dividend", "Priority in liquidation", model.ChoiceB, "Common stock = equity ownership.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Preferred stock typically has:", "No dividend", "Priority over common in dividends", "Same voting as common", "No liquidation preference", model.ChoiceB, "Preferred has dividend and often liquidation priority.", vehicles, "easy"),
		seedQuestion("SERIES_65", "A REIT typically invests in:", "Stocks only", "Real estate or mortgages", "Bonds only", "Commodities", model.ChoiceB, "REIT = real estate investment trust.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Diversification can help reduce:", "Systematic risk", "Unsystematic (specific) risk", "All risk", "Inflation risk only", model.ChoiceB, "Diversification reduces unsystematic/specific risk.", vehicles, "medium"),
		seedQuestion("SERIES_65", "An index fund seeks to:", "Beat the index", "Match the index's performance", "Only invest in bonds", "Avoid all risk", model.ChoiceB, "Index funds seek to replicate index performance.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Yield to maturity assumes:", "Bond is sold before maturity", "Bond is held to maturity and coupons reinvested at YTM", "No reinvestment", "Default occurs", model.ChoiceB, "YTM assumes hold to maturity and reinvestment at YTM.", vehicles, "medium"),
		seedQuestion("SERIES_65", "Junk bonds refer to:", "Treasury bonds", "High-quality corporate bonds", "Below-investment-grade bonds", "Municipal bonds", model.ChoiceC, "Junk = below investment grade (high yield).", vehicles, "easy"),
		seedQuestion("SERIES_65", "An open-end mutual fund:", "Has a fixed number of shares", "Issues and redeems at NAV", "Trades only on exchange", "Is a UIT", model.ChoiceB, "Open-end funds issue and redeem at NAV.", vehicles, "easy"),
		seedQuestion("SERIES_65", "A fixed annuity provides:", "Variable payout based on sub-accounts", "A fixed payout", "Only equity exposure", "No tax deferral", model.ChoiceB, "Fixed annuity provides fixed payout.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Liquidity risk is:", "The risk that an asset cannot be sold quickly without loss", "Only for bonds", "The same as credit risk", "Only for stocks", model.ChoiceA, "Liquidity risk = cannot sell quickly without significant loss.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Inflation risk refers to:", "Default risk", "Purchasing power erosion", "Interest rate risk only", "Liquidity risk", model.ChoiceB, "Inflation risk = purchasing power loss over time.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Asset allocation is:", "The same as stock picking", "Dividing investments among asset classes", "Only for bonds", "Only for retirees", model.ChoiceB, "Asset allocation = dividing among asset classes.", vehicles, "easy"),
		seedQuestion("SERIES_65", "Risk tolerance is:", "The client's willingness and ability to take risk", "Only age-based", "Only for institutional clients", "The same for everyone", model.ChoiceA, "Risk tolerance = willingness and ability to take risk.", clients, "easy"),
		seedQuestion("SERIES_65", "A growth-oriented client typically:", "Seeks capital appreciation", "Seeks only income", "Accepts no risk", "Only holds bonds", model.ChoiceA, "Growth-oriented clients seek capital appreciation.", clients, "easy"),
		seedQuestion("SERIES_65", "Income-oriented strategies emphasize:", "Only capital gains", "Current income (dividends, interest)", "Only growth", "Only speculation", model.ChoiceB, "Income strategies emphasize current income.", clients, "easy"),
		seedQuestion("SERIES_65", "Time horizon affects:", "Asset allocation and product choice", "Only risk tolerance", "Only liquidity", "Nothing", model.ChoiceA, "Time horizon affects allocation and product selection.", clients, "easy"),
		seedQuestion("SERIES_65", "A client with a short time horizon and need for liquidity may favor:", "Illiquid alternatives", "Cash and short-term instruments", "Only small-cap stocks", "Only long-term bonds", model.ChoiceB, "Short horizon and liquidity needs favor cash/short-term.", clients, "easy"),
		seedQuestion("SERIES_65", "Dollar-cost averaging involves:", "Investing a fixed amount at regular intervals", "Only lump-sum investing", "Only when market is high", "Selling only", model.ChoiceA, "DCA = investing fixed amount at regular intervals.", clients, "easy"),
		seedQuestion("SERIES_65", "Rebalancing is used to:", "Increase risk over time", "Bring portfolio back to target allocation", "Only sell winners", "Only buy more of one asset", model.ChoiceB, "Rebalancing restores target allocation.", clients, "easy"),
		seedQuestion("SERIES_65", "A conservative investor typically:", "Accepts high volatility for return", "Prefers preservation of capital", "Only holds stocks", "Ignores inflation", model.ChoiceB, "Conservative investors prefer capital preservation.", clients, "easy"),
		seedQuestion("SERIES_65", "Modern portfolio theory emphasizes:", "Picking only winners", "Diversification and efficient frontier", "Only bonds", "Only one asset class", model.ChoiceB, "MPT emphasizes diversification and efficient frontier.", clients, "medium"),
		seedQuestion("SERIES_65", "A client's financial situation includes:", "Only income", "Income, assets, liabilities, expenses", "Only assets", "Only age", model.ChoiceB, "Financial situation includes income, assets, liabilities, expenses.", clients, "easy"),
		seedQuestion("SERIES_65", "Tax considerations may affect:", "Asset location and product choice", "Only income", "Only for high earners", "Nothing", model.ChoiceA, "Taxes affect asset location and product choice.", clients, "easy"),
		seedQuestion("SERIES_65", "An aggressive growth strategy may include:", "Only money market", "Higher allocation to equities and higher risk", "Only bonds", "Only cash", model.ChoiceB, "Aggressive growth often has higher equity allocation.", clients, "easy"),
		seedQuestion("SERIES_65", "Retirement planning often considers:", "Only current income", "Time horizon, income needs, inflation, taxes", "Only Social Security", "Only 401(k)", model.ChoiceB, "Retirement planning considers horizon, needs, inflation, taxes.", clients, "easy"),
		seedQuestion("SERIES_65", "Estate planning considerations may include:", "Only wills", "Taxes, titling, beneficiaries, trusts", "Only life insurance", "Only real estate", model.ChoiceB, "Estate planning includes taxes, titling, beneficiaries, trusts.", clients, "medium"),
		seedQuestion("SERIES_65", "Correlation in a portfolio refers to:", "Only returns", "How assets move relative to each other", "Only risk", "Only stocks", model.ChoiceB, "Correlation = how asset returns move relative to each other.", clients, "medium"),
		seedQuestion("SERIES_65", "A moderate risk profile typically:", "Seeks balance of growth and income with moderate risk", "Accepts no risk", "Only holds stocks", "Only holds bonds", model.ChoiceA, "Moderate = balance of growth and income, moderate risk.", clients, "easy"),
		seedQuestion("SERIES_65", "GDP measures:", "Only inflation", "Total output of goods and services", "Only employment", "Only interest rates", model.ChoiceB, "GDP = gross domestic product, total output.", economy, "easy"),
		seedQuestion("SERIES_65", "Inflation is typically measured by:", "GDP only", "CPI and/or PCE", "Only unemployment", "Only Fed funds rate", model.ChoiceB, "Inflation often measured by CPI and PCE.", economy, "easy"),
		seedQuestion("SERIES_65", "When the Fed raises interest rates, bond prices typically:", "Rise", "Fall", "Stay unchanged", "Double", model.ChoiceB, "Rate increases typically cause bond prices to fall.", economy, "easy"),
		seedQuestion("SERIES_65", "The business cycle includes phases such as:", "Only expansion", "Expansion, peak, contraction, trough", "Only recession", "Only growth", model.ChoiceB, "Business cycle: expansion, peak, contraction, trough.", economy, "easy"),
		seedQuestion("SERIES_65", "Monetary policy is primarily conducted by:", "The Treasury", "The Federal Reserve", "Congress", "The SEC", model.ChoiceB, "Federal Reserve conducts monetary policy.", economy, "easy"),
		seedQuestion("SERIES_65", "Fiscal policy involves:", "Interest rate setting", "Government spending and taxation", "Only money supply", "Only bank regulation", model.ChoiceB, "Fiscal policy = government spending and taxation.", economy, "easy"),
		seedQuestion("SERIES_65", "During a recession, the Fed might:", "Raise rates only", "Lower rates to stimulate economy", "Only sell securities", "Only increase reserve requirements", model.ChoiceB, "Fed may lower rates in recession to stimulate.", economy, "easy"),
		seedQuestion("SERIES_65", "Real return is approximately:", "Nominal return only", "Nominal return minus inflation", "Inflation only", "Risk-free rate only", model.ChoiceB, "Real return is nominal return minus inflation.", economy, "medium"),
		seedQuestion("SERIES_65", "Unemployment is a:", "Lagging indicator", "Leading indicator", "Coincident indicator", "None of these", model.ChoiceA, "Unemployment is often a lagging indicator.", economy, "medium"),
		seedQuestion("SERIES_65", "Yield curve typically slopes upward when:", "Short rates are higher than long rates", "Long rates are higher than short rates", "All rates are equal", "There is deflation", model.ChoiceB, "Normal yield curve: long rates > short rates.", economy, "medium"),
		seedQuestion("SERIES_65", "An inverted yield curve has sometimes preceded:", "Only inflation", "Recessions", "Only bull markets", "Only bond rallies", model.ChoiceB, "Inverted yield curve has preceded recessions.", economy, "medium"),
		seedQuestion("SERIES_65", "CPI stands for:", "Corporate Profit Index", "Consumer Price Index", "Central Policy Indicator", "Credit Performance Index", model.ChoiceB, "CPI = Consumer Price Index.", economy, "easy"),
		seedQuestion("SERIES_65", "Expansionary fiscal policy typically involves:", "Higher taxes and lower spending", "Lower taxes and/or higher spending", "Only rate cuts", "Only Fed action", model.ChoiceB, "Expansionary fiscal = lower taxes and/or higher spending.", economy, "medium"),
		seedQuestion("SERIES_65", "Deflation is:", "Rising prices", "Falling prices", "Stable prices", "Only for commodities", model.ChoiceB, "Deflation = sustained fall in general price level.", economy, "easy"),
		seedQuestion("SERIES_65", "The discount rate is:", "The rate the Fed charges banks", "The rate banks charge each other", "Only the prime rate", "Only for mortgages", model.ChoiceA, "Discount rate = rate Fed charges banks for loans.", economy, "medium"),
		seedQuestion("SERIES_65", "Leading economic indicators may include:", "Stock prices, building permits", "Only GDP", "Only unemployment", "Only CPI", model.ChoiceA, "Leading indicators include stock prices, building permits.", economy, "medium"),
		seedQuestion("SERIES_65", "Interest rate risk for bonds is the risk that:", "Issuer defaults", "Rates rise and bond prices fall", "Only inflation", "Only liquidity", model.ChoiceB, "Interest rate risk = rates rise, bond prices fall.", economy, "easy"),
		seedQuestion("SERIES_65", "The Fed's dual mandate includes:", "Only price stability", "Price stability and maximum employment", "Only employment", "Only GDP growth", model.ChoiceB, "Fed mandate: price stability and maximum employment.", economy, "easy"),
		seedQuestion("SERIES_65", "Supply and demand for loanable funds affect:", "Interest rates", "Only stock prices", "Only inflation", "Only employment", model.ChoiceA, "Supply and demand for funds affect interest rates.", economy, "easy"),
		seedQuestion("SERIES_65", "Currency risk applies when:", "Investing only domestically", "Investing in foreign assets or foreign currency", "Only in bonds", "Only in stocks", model.ChoiceB, "Currency risk applies to foreign investments/currency.", economy, "easy"),
		seedQuestion("SERIES_65", "Economic growth is often associated with:", "Only recession", "Corporate earnings and equity performance", "Only bond performance", "Only deflation", model.ChoiceB, "Growth often supports earnings and equity performance.", economy, "easy"),
		seedQuestion("SERIES_65", "An IA that has custody must generally:", "Have no audit", "Use qualified custodian and/or satisfy custody rule", "Only hold cash", "Only for mutual funds", model.ChoiceB, "Custody rule requires qualified custodian and/or surprise exam.", laws, "medium"),
		seedQuestion("SERIES_65", "The term 'investment adviser' excludes under the Act:", "Banks and BD agents giving only incidental advice", "Anyone giving advice", "Only state-registered firms", "Only those with AUM over $25M", model.ChoiceA, "Act excludes banks and BD agents in certain circumstances.", laws, "hard"),
		seedQuestion("SERIES_65", "Form ADV Part 2A is:", "The brochure", "Part 1 only", "Only for SEC-registered", "Not required", model.ChoiceA, "Part 2A is the brochure (firm disclosure).", laws, "medium"),
		seedQuestion("SERIES_65", "A solicitor is someone who:", "Only provides research", "Refers clients for compensation", "Only holds custody", "Only files ADV", model.ChoiceB, "Solicitor refers clients for a fee; disclosure required.", laws, "medium"),
		seedQuestion("SERIES_65", "State registration of an IA may be denied or revoked for:", "Only failure to pay fee", "Fraud, conviction, or other statutory grounds", "Only if no clients", "Only if SEC-registered", model.ChoiceB, "States may deny/revoke for fraud, conviction, etc.", laws, "medium"),
		seedQuestion("SERIES_65", "An IA must update Form ADV:", "Never", "At least annually and when material changes occur", "Only when changing custody", "Only when adding clients", model.ChoiceB, "ADV must be updated annually and for material changes.", laws, "easy"),
		seedQuestion("SERIES_65", "Disclosure of referral fees to the client must be:", "Only verbal", "In writing before the client is referred or engages", "Only in the brochure", "Only annually", model.ChoiceB, "Referral fee disclosure must be in writing in advance.", ethics, "medium"),
		seedQuestion("SERIES_65", "An IA may not:", "Charge fees", "Make unsuitable recommendations or engage in fraud", "Rebalance", "Use a custodian", model.ChoiceB, "IAs must not make unsuitable recommendations or commit fraud.", ethics, "easy"),
		seedQuestion("SERIES_65", "Personal trading by access persons may require:", "No reporting", "Pre-approval and reporting of holdings and trades", "Only annual report", "Only for principals", model.ChoiceB, "Code of ethics typically requires reporting and possibly pre-approval.", ethics, "medium"),
		seedQuestion("SERIES_65", "Scalping in the IA context refers to:", "Rebalancing", "Buying for own account then recommending to clients", "Selling only", "Dollar-cost averaging", model.ChoiceB, "Scalping = buying then recommending to clients for profit.", ethics, "medium"),
		seedQuestion("SERIES_65", "A wrap account sponsor typically:", "Has no fiduciary duty", "Provides program; IA may have fiduciary duty to client", "Only holds custody", "Only executes trades", model.ChoiceB, "Wrap sponsor provides program; IA has duty to client.", ethics, "medium"),
		seedQuestion("SERIES_65", "Beta measures a security's:", "Total risk", "Volatility relative to the market", "Only dividend yield", "Only liquidity", model.ChoiceB, "Beta = sensitivity to market (systematic risk).", vehicles, "medium"),
		seedQuestion("SERIES_65", "A closed-end fund:", "Redeems at NAV daily", "Trades on exchange; may trade at premium or discount", "Has no ticker", "Is the same as an open-end fund", model.ChoiceB, "Closed-end funds trade on exchange at market price.", vehicles, "medium"),
		seedQuestion("SERIES_65", "Unit investment trusts:", "Have active management", "Have a fixed portfolio", "Trade at NAV only", "Are the same as mutual funds", model.ChoiceB, "UIT has fixed, unmanaged portfolio.", vehicles, "medium"),
		seedQuestion("SERIES_65", "Credit risk is the risk that:", "Interest rates rise", "The issuer defaults", "Inflation rises", "The bond is liquid", model.ChoiceB, "Credit risk = issuer default.", vehicles, "easy"),
		seedQuestion("SERIES_65", "A 403(b) plan is typically for:", "Corporate employees", "Employees of public schools and certain nonprofits", "Only government", "Only self-employed", model.ChoiceB, "403(b) is for public schools and certain nonprofits.", vehicles, "medium"),
		seedQuestion("SERIES_65", "Tax-loss harvesting involves:", "Selling winners only", "Selling losers to offset gains", "Only in IRAs", "Only for bonds", model.ChoiceB, "Tax-loss harvesting = selling losers to offset gains.", clients, "medium"),
		seedQuestion("SERIES_65", "Asset location refers to:", "Where the client lives", "Placing assets in taxable vs tax-advantaged accounts", "Only geographic", "Only bonds in IRA", model.ChoiceB, "Asset location = which account holds which assets for tax efficiency.", clients, "medium"),
		seedQuestion("SERIES_65", "A 60/40 stock/bond allocation is often considered:", "Very aggressive", "Moderate or balanced", "Very conservative", "Only for young investors", model.ChoiceB, "60/40 is often considered moderate/balanced.", clients, "easy"),
		seedQuestion("SERIES_65", "Systematic risk cannot be diversified away because:", "It is firm-specific", "It affects the whole market", "Only bonds have it", "Only stocks have it", model.ChoiceB, "Systematic risk = market-wide, not diversifiable.", clients, "medium"),
		seedQuestion("SERIES_65", "An emergency fund is typically:", "Invested in long-term bonds", "Kept in liquid, low-risk assets", "Only in stocks", "Only in real estate", model.ChoiceB, "Emergency fund = liquid, low-risk.", clients, "easy"),
		seedQuestion("SERIES_65", "The 4% rule is often cited for:", "Initial withdrawal rate in retirement", "Asset allocation", "Only bond yield", "Only inflation", model.ChoiceA, "4% rule = sustainable withdrawal rate in retirement.", clients, "medium"),
		seedQuestion("SERIES_65", "Fed funds rate is the rate:", "Banks charge customers", "Banks charge each other for overnight loans", "On Treasury bills", "On mortgages", model.ChoiceB, "Fed funds = interbank overnight rate.", economy, "medium"),
		seedQuestion("SERIES_65", "Quantitative easing (QE) typically involves:", "Raising rates", "Central bank buying securities to inject liquidity", "Only fiscal policy", "Only tax cuts", model.ChoiceB, "QE = central bank buying securities to increase money supply.", economy, "medium"),
		seedQuestion("SERIES_65", "A recession is often defined as:", "One quarter of negative GDP", "Two consecutive quarters of negative real GDP", "Only rising unemployment", "Only falling stock prices", model.ChoiceB, "Recession often = two consecutive quarters of negative real GDP.", economy, "easy"),
		seedQuestion("SERIES_65", "Stagflation refers to:", "Growth with low inflation", "Stagnation and high inflation", "Only deflation", "Only employment growth", model.ChoiceB, "Stagflation = stagnation + inflation.", economy, "medium"),
		seedQuestion("SERIES_65", "The prime rate is:", "The Fed funds rate", "Rate banks charge their best customers", "Only for mortgages", "Only for bonds", model.ChoiceB, "Prime rate = rate banks charge best customers.", economy, "medium"),
	}
}
