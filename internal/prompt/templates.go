package prompt

// The template texts below are fixed at process start. Each embeds 1-2
// worked example decks with their expected JSON output to steer the model
// toward the exact output shape the normalizer expects.

const extractionPreamble = `
You are an expert at extracting structured data from investor pitch decks. For each deck, I will present the slide text. Return exactly one JSON object with these ten fields:
{
  "Startup Name": string or null,  # what is the most likely startup name? likely a single name most repeated in deck used to describe the company, not a sentence or contain hashtag #
  "Founding Year": string or null, # If no explicit "Founded in YYYY" appears, scan all content for founding-year clues, including: timeline or roadmap dates, traction graph captions, team-bio phrasing, funding-history dates. Determine the most probable calendar year in which the company was founded. If multiple plausible years appear, choose the earliest one that has at least one direct or indirect supporting signal.
  "Founders": [string, ...] or null, # Who are the likely founders of this startup?
  "Industry": string or null,       # one of: Fintech, Insurtech, Regtech, Healthtech, Medtech, Biotech, Pharmatech, Femtech, Eldertech, Proptech, Contech, Agtech, Foodtech, RestaurantTech, ClimateTech, CleanTech, EnergyTech, Greentech, Edtech, HRtech, Worktech, Martech, Adtech, RetailTech, Ecommerce, Marketplace, MobilityTech, Autotech, TransportTech, LogisticsTech, SupplyChainTech, TravelTech, SpaceTech, AerospaceTech, DefenceTech, SportTech, GamingTech, eSportsTech, MediaTech, StreamingTech, MusicTech, CreatorEconomyTech, SocialTech, Cybersecurity, AI, MachineLearning, BigData, AnalyticsTech, CloudTech, SaaS, DevOps, IoT, Robotics, HardwareTech, WearablesTech, 3DPrinting, AR/VR/XR, Metaverse, Web3, Blockchain, Crypto, NFT, QuantumTech, LegalTech, Govtech, CivicTech, NonprofitTech, ProductivityTech, CollaborationTech, PetTech, ElderCareTech etc.
  "Niche": string or null,          # free-text description e.g. "crypto exchange", "mobile betting", "AI tutoring"
  "USP": string or null,            # a single sentence from the deck that states the unique selling proposition
  "Funding Stage": string or null,   # If no explicit round is mentioned, scan the deck for the following signals: capital sought, traction metrics (users, revenue, growth), product maturity, team size and seniority, prior funding, planned use of funds, target investors, implied valuation. Using these signals and standard VC heuristics, decide the most probable funding round (Pre-seed, Seed, Series A, Series B, Series C or later).
  "Current Revenue": string or null, # What is the revenue corresponding to the latest actual year in the financials, as opposed to future forecasts?
  "Market": { "TAM": string or null, "SAM": string or null, "SOM": string or null } or null,
  "Amount Raised": string or null,  # How much funds have this startup previously raised from investors since its inception? do not include the amount they want to raise in future
}
If any field is not present, set it to null.

---- EXAMPLE 1 ----
Slide texts:

----- Slide 1 -----
Yabscore
----- Slide 2 -----
Founded in Oct 2019, we are a sport-tech startup focused on mobile sports betting in Nigeria.
----- Slide 3 -----
Team:
IK Ezekwelu - Co-Founder
Dapo Arowa - Co-Founder
Adewale Adeleke - Creative Head
----- Slide 4 -----
Unique Selling Proposition:
Yabscore is the first fully mobile sports-betting platform tailored to Nigerian football fans, offering in-play wagering and live performance stats.
----- Slide 7 -----
Market Size:
TAM: $95 Billion +
SAM: $2.2 Billion +
Market Opp.: $193 Million +
----- Slide 12 -----
Traction:
Gross Revenues in 2020: $3.1k

JSON answer:
{
  "Startup Name": "Yabscore",
  "Founding Year": "2019",
  "Founders": ["IK Ezekwelu", "Dapo Arowa"],
  "Industry": "SportTech",
  "Niche": "Mobile sports betting",
  "USP": "Yabscore is the first fully mobile sports-betting platform tailored to Nigerian football fans, offering in-play wagering and live performance stats.",
  "Funding Stage": null,
  "Current Revenue": "$3.1k",
  "Market": { "TAM": "$95B", "SAM": "$2.2B", "SOM": "$193M" },
  "Amount Raised": "$0"
}

---- EXAMPLE 2 ----
Slide texts:

----- Slide 1 -----
Quidax

----- Slide 2 -----
Founded in August 2018, Quidax is a fintech "cryptocurrency enabler" that lets individuals and businesses across Africa buy, sell, save and spend crypto in their local currency through an exchange, OTC desk and a single, full-stack crypto API.

----- Slide 3 -----
Team:
Buchi Okoro - Co-Founder & CEO
Uzo Awili - Co-Founder & CTO
Morris Ebieroma - Co-Founder & CIO

----- Slide 4 -----
Unique Selling Proposition:
An Africa-focused, all-in-one crypto platform offering:
- Seamless fiat on/off-ramps and 1,200+ trading pairs.
- A single API that lets banks, fintechs and gaming apps embed custody, trading and payments in days.
- "African Proximity Advantage": deep local rails, faster support and lower switching costs than global rivals.

----- Slide 7 -----
Market Opportunity:
- 575 million+ global crypto users as of Dec 2024; 65 million in Africa, with Nigeria ranked #2 worldwide for adoption.
(The deck does not state dollar TAM/SAM/SOM figures.)

----- Slide 12 -----
Traction:
- Crossed $10 million ARR and 700k sign-ups in 2023.
- Surpassed $100 million cumulative trading volume by Oct 2020 and now processes ~$25 million monthly.
- Serves 2,000+ business API clients across digital banking, gaming and fintech.

(No fundraising ask, Series round or formal TAM/SAM/SOM numbers are disclosed in the deck.)

JSON answer:
{
  "Startup Name": "Quidax",
  "Founding Year": "2018",
  "Founders": ["Buchi Okoro", "Uzo Awili", "Morris Ebieroma"],
  "Industry": "Fintech",
  "Niche": "Cryptocurrency exchange",
  "USP": "All-in-one platform with seamless fiat on/off ramps and a single API enabling African users and businesses to access 1,200+ crypto pairs securely",
  "Funding Stage": null,
  "Current Revenue": "$10.2m",
  "Market": { "TAM": null, "SAM": null, "SOM": null },
  "Amount Raised": "$0"
}

---- NOW PROCESS THIS NEW DECK ----
Slide texts:
`

const extractionSuffix = "\nJSON answer:"

const scoringPreamble = `
You are a world-class venture capital analyst evaluating startup pitch decks. Your task is to score the quality of a pitch based on exactly these 10 sections:

1. Team
2. Problem
3. Solution
4. Revenue Model
5. Market Size
6. Traction
7. Go-to-Market
8. Competition
9. Business Model Fit
10. Ask & Use of Funds

Important rules:
- Only score a section if the content directly addresses it in the pitch. Do not assume or infer.
- If a section is missing, vague, or superficial, give it a score of 0 to 3 and say why.
- Never award 10/10 unless the content is clear, complete, and convincing.
- You MUST include a brief comment for each score (1 sentence max).
- Score each section from 0 to 10.
- If a section is not present, do not guess. Penalize.

Return your output as strict JSON:

{
  "sections": [
    { "name": "Team", "score": 7, "comment": "Experienced founders but lacks depth on roles" },
    ...
  ],
  "total_score": 65,
  "summary": "Strong traction and product, but team details and financials are lacking."
}

--- BEGIN SLIDE TEXT ---
`

const scoringSuffix = "\n--- END SLIDE TEXT ---\n"

const insightPreamble = `
You are a world-class venture capital analyst. Given the slide text from a startup's pitch deck, evaluate the deck's quality and investment readiness.

Return exactly one JSON object with the following keys:
- "Pitch Score": integer (0 to 100), the overall quality of the pitch, based on clarity, traction, team, market, and completeness.
- "Red Flags": list of strings, weaknesses, missing slides, unclear metrics, unrealistic claims, etc.
- "Suggested Questions": list of strings, what an investor should ask in a meeting to probe the deck further.
- "Summary Insight": one or two sentences summarizing the investment potential.

If information is missing, penalize the score and flag it clearly.

--- EXAMPLE 1 ---
Slide text:
"We are an AI platform helping students revise smarter using personalized flashcards. The product is live with 2k monthly users. Team: Janet (Founder, ex-Edmodo), Kunle (CTO, Oxford PhD). Monetization TBD."

JSON Output:
{
  "Pitch Score": 68,
  "Red Flags": [
    "No clear monetization strategy",
    "Limited traction data (only user count mentioned)"
  ],
  "Suggested Questions": [
    "What are your revenue projections for the next 12 months?",
    "Who is your paying customer (schools, parents, students)?"
  ],
  "Summary Insight": "The founding team has strong credentials and early traction, but monetization and go-to-market strategy remain unclear."
}

--- EXAMPLE 2 ---
Slide text:
"Our SaaS platform automates logistics for mid-size retailers. $150k ARR in 6 months, with 95% retention. Team includes ex-Amazon logistics head. Raising $1M Seed to scale."

JSON Output:
{
  "Pitch Score": 90,
  "Red Flags": [],
  "Suggested Questions": [
    "What is your CAC and LTV?",
    "How do you plan to scale customer acquisition?"
  ],
  "Summary Insight": "This is a high-quality deck with strong traction and a credible team in a clear market."
}

--- NOW EVALUATE THIS DECK ---
Slide text:
`

const insightSuffix = "\n\nJSON Output:\n"

const keySlidesPreamble = `I am going to give you the text from each slide of a pitch deck, one by one. Please tell me exactly which page number (1-indexed) is the Team slide, which page number is the Market slide, and which page number is the Traction slide. Format your answer exactly as JSON with keys "TeamPage", "MarketPage", "TractionPage". If you cannot find any of them, put null for that field.
`

const keySlidesSuffix = `
Answer in JSON, for example:
{
  "TeamPage": 7,
  "MarketPage": 5,
  "TractionPage": 15
}
`
